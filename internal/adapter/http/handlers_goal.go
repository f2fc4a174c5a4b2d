package adapthttp

import (
	"net/http"

	"canteen/internal/domain"
)

func (s *Server) handleGoalEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight        float64              `json:"weight"`
		Height        float64              `json:"height"`
		Age           int                  `json:"age"`
		Gender        domain.Gender        `json:"gender"`
		ActivityLevel domain.ActivityLevel `json:"activityLevel"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Weight <= 0 || req.Height <= 0 || req.Age <= 0 {
		writeServiceError(w, r, domain.Invalid("weight, height and age must be > 0"))
		return
	}
	if req.Gender == "" {
		req.Gender = domain.GenderMale
	}
	if !req.Gender.Valid() {
		writeServiceError(w, r, domain.Invalid("gender must be \"male\" or \"female\""))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bmr":           domain.EstimateBMR(req.Weight, req.Height, req.Age, req.Gender),
		"dailyCalories": domain.EstimateDailyCalories(req.Weight, req.Height, req.Age, req.Gender, req.ActivityLevel),
	})
}
