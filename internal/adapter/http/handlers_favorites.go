package adapthttp

import "net/http"

func (s *Server) handleFavoritesList(w http.ResponseWriter, r *http.Request) {
	items, err := s.favorites.List(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleFavoritesAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FoodID int64 `json:"foodId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	fav, err := s.favorites.Add(r.Context(), currentUserID(r), body.FoodID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (s *Server) handleFavoritesRemove(w http.ResponseWriter, r *http.Request) {
	foodID, err := pathID(r, "foodId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := s.favorites.Remove(r.Context(), currentUserID(r), foodID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleFavoritesCheck(w http.ResponseWriter, r *http.Request) {
	foodID, err := pathID(r, "foodId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	ok, err := s.favorites.IsFavorite(r.Context(), currentUserID(r), foodID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"isFavorite": ok})
}
