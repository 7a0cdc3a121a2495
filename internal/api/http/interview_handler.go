package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/service"

	"github.com/gorilla/mux"
)

// InterviewHandler exposes the scheduling core as a JSON API.
type InterviewHandler struct {
	interviews service.InterviewService
}

func NewInterviewHandler(interviews service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// scheduleRequest is the wire form of a scheduling request. The scheduled
// time arrives as a wall-clock time plus an IANA timezone and is converted
// into an instant here, at the boundary.
type scheduleRequest struct {
	ApplicationID   int32    `json:"application_id"`
	Title           string   `json:"title"`
	InterviewType   string   `json:"interview_type"`
	ScheduledAt     string   `json:"scheduled_at"` // RFC 3339
	Timezone        string   `json:"timezone"`
	DurationMinutes int32    `json:"duration_minutes"`
	Location        string   `json:"location"`
	MeetingProvider string   `json:"meeting_provider"`
	MeetingLink     string   `json:"meeting_link"`
	InterviewerIDs  []int32  `json:"interviewer_ids"`
	GuestEmails     []string `json:"guest_emails"`
	Notes           string   `json:"internal_notes"`
	SyncToCalendar  bool     `json:"sync_to_calendar"`
	AutoCreateLink  bool     `json:"auto_create_link"`
}

type scheduleResponse struct {
	Interview *domain.Interview     `json:"interview"`
	Outcome   *domain.MeetingOutcome `json:"outcome"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var in scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, &domain.ValidationError{Reason: "malformed_body"})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, in.ScheduledAt)
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_scheduled_at", Value: in.ScheduledAt})
		return
	}

	req := &domain.SchedulingRequest{
		ApplicationID:   in.ApplicationID,
		Title:           in.Title,
		Type:            parseInterviewType(in.InterviewType),
		ScheduledAt:     scheduledAt,
		Timezone:        in.Timezone,
		DurationMinutes: in.DurationMinutes,
		Location:        in.Location,
		Provider:        in.MeetingProvider,
		MeetingLink:     in.MeetingLink,
		InterviewerIDs:  in.InterviewerIDs,
		GuestEmails:     in.GuestEmails,
		Notes:           in.Notes,
		SyncToCalendar:  in.SyncToCalendar,
		AutoCreateLink:  in.AutoCreateLink,
	}

	iv, outcome, err := h.interviews.Schedule(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, scheduleResponse{Interview: iv, Outcome: outcome})
}

type transitionRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (h *InterviewHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_interview_id"})
		return
	}

	var in transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, &domain.ValidationError{Reason: "malformed_body"})
		return
	}

	target := domain.InterviewStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
	iv, err := h.interviews.Transition(r.Context(), id, target, in.Reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "interview_not_found"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, iv)
}

func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_interview_id"})
		return
	}
	iv, err := h.interviews.GetInterview(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "interview_not_found"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, iv)
}

func (h *InterviewHandler) ListByApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_application_id"})
		return
	}
	interviews, err := h.interviews.ListByApplication(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"interviews": interviews})
}

func (h *InterviewHandler) ScorecardCompletion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, &domain.ValidationError{Reason: "invalid_interviewer_id"})
		return
	}
	view, err := h.interviews.ScorecardCompletion(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int32(id), nil
}

func parseInterviewType(s string) domain.InterviewType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VIDEO":
		return domain.InterviewTypeVideo
	case "IN_PERSON":
		return domain.InterviewTypeInPerson
	default:
		return domain.InterviewType(s)
	}
}
