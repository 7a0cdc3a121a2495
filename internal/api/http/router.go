package http

import (
	"database/sql"
	"net/http"

	"hireflow-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the scheduling API. Everything under /api requires a
// bearer token; /healthz is open for probes.
func NewRouter(handler *InterviewHandler, notes *NotificationHandler, tokens security.TokenManager, db *sql.DB) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/interviews", handler.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/interviews/{id:[0-9]+}", handler.Get).Methods(http.MethodGet)
	api.HandleFunc("/interviews/{id:[0-9]+}/transition", handler.Transition).Methods(http.MethodPost)
	api.HandleFunc("/applications/{id:[0-9]+}/interviews", handler.ListByApplication).Methods(http.MethodGet)
	api.HandleFunc("/interviewers/{id:[0-9]+}/scorecard-completion", handler.ScorecardCompletion).Methods(http.MethodGet)
	api.HandleFunc("/notifications", notes.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notes.MarkAsRead).Methods(http.MethodPost)

	return r
}
