package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Detail map[string]string `json:"detail,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses. Only
// ValidationError and InvalidTransitionError are caller-visible failure
// modes; anything else is an internal error.
func respondError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "validation_error",
			Detail: map[string]string{
				"reason": validation.Reason,
				"value":  validation.Value,
			},
		})
		return
	}

	var transition *domain.InvalidTransitionError
	if errors.As(err, &transition) {
		respondJSON(w, http.StatusConflict, errorResponse{
			Error: "invalid_transition",
			Detail: map[string]string{
				"from": string(transition.From),
				"to":   string(transition.To),
			},
		})
		return
	}

	logger.Error("Request failed", "error", err)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}
