package adapthttp

import (
	"net/http"

	"canteen/internal/domain"
)

func (s *Server) handleFoodList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FoodFilter{
		Search:      q.Get("search"),
		IsVeg:       optionalBoolQuery(r, "isVeg"),
		HighProtein: q.Get("highProtein") == "true",
		SortBy:      domain.SortKey(q.Get("sortBy")),
	}
	var err error
	if filter.MinCalories, err = optionalIntQuery(r, "minCalories"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if filter.MaxCalories, err = optionalIntQuery(r, "maxCalories"); err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := s.foods.Menu(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleFoodGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	item, err := s.foods.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleFoodAll(w http.ResponseWriter, r *http.Request) {
	items, err := s.foods.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleFoodCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.FoodPatch
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item, err := s.foods.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleFoodUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var patch domain.FoodPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item, err := s.foods.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleFoodDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := s.foods.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
