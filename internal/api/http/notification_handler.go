package http

import (
	"net/http"
	"strconv"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/service"
)

// NotificationHandler serves the authenticated user's in-app inbox.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing_token"})
		return
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	notes, total, err := h.notifications.List(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notificationListResponse{Notifications: notes, Total: total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing_token"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_notification_id"})
		return
	}

	if err := h.notifications.MarkAsRead(r.Context(), id, claims.UserID); err != nil {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "notification_not_found"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func queryInt(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
