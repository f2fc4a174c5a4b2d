package adapthttp

import "net/http"

func (s *Server) handleIntakeLog(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FoodID   int64  `json:"foodId"`
		Quantity *int   `json:"quantity"`
		Date     string `json:"date"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	entry, err := s.intake.Log(r.Context(), currentUserID(r), body.FoodID, quantity, body.Date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleIntakeDaily(w http.ResponseWriter, r *http.Request) {
	daily, err := s.intake.Daily(r.Context(), currentUserID(r), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, daily)
}

func (s *Server) handleIntakeToday(w http.ResponseWriter, r *http.Request) {
	summary, err := s.intake.TodaySummary(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleIntakeHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.intake.History(r.Context(), currentUserID(r), intQuery(r, "days", 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleIntakeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.intake.UpdateQuantity(r.Context(), currentUserID(r), id, body.Quantity); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id, "quantity": body.Quantity})
}

func (s *Server) handleIntakeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := s.intake.Delete(r.Context(), currentUserID(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
