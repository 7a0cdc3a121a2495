package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hireflow-backend/internal/calendar"
	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/meeting"
	"hireflow-backend/internal/repository"

	"github.com/google/uuid"
)

type interviewService struct {
	interviewRepo   repository.InterviewRepository
	scorecardRepo   repository.ScorecardRepository
	resolver        *AttendeeResolver
	gateways        *meeting.Registry
	mirror          calendar.Mirror // nil when no calendar is configured
	dispatcher      Dispatcher
	providerTimeout time.Duration
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	scorecardRepo repository.ScorecardRepository,
	resolver *AttendeeResolver,
	gateways *meeting.Registry,
	mirror calendar.Mirror,
	dispatcher Dispatcher,
	providerTimeout time.Duration,
) InterviewService {
	return &interviewService{
		interviewRepo:   interviewRepo,
		scorecardRepo:   scorecardRepo,
		resolver:        resolver,
		gateways:        gateways,
		mirror:          mirror,
		dispatcher:      dispatcher,
		providerTimeout: providerTimeout,
	}
}

// Schedule treats every downstream integration as best-effort: a flaky
// video provider or calendar must never block the recruiting workflow.
// Only invalid input aborts before anything is created.
func (s *interviewService) Schedule(ctx context.Context, req *domain.SchedulingRequest) (*domain.Interview, *domain.MeetingOutcome, error) {
	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	attendees, warnings, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	outcome := &domain.MeetingOutcome{CalendarSyncStatus: domain.CalendarSyncSkipped}
	outcome.Warnings = append(outcome.Warnings, warnings...)

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	meetingLink := strings.TrimSpace(req.MeetingLink)
	meetingProvider := ""
	if provider != "" && provider != domain.ProviderManual {
		meetingProvider = provider
	}

	if s.shouldCallProvider(req, provider, meetingLink) {
		link, warn := s.createProviderMeeting(ctx, provider, req, attendees)
		if warn != "" {
			outcome.AddWarning(warn)
		} else {
			meetingLink = link
			outcome.Provider = provider
		}
	}

	iv := &domain.Interview{
		ApplicationID:   req.ApplicationID,
		Title:           req.Title,
		Type:            req.Type,
		ScheduledAt:     req.ScheduledAt,
		Timezone:        req.Timezone,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		MeetingLink:     meetingLink,
		MeetingProvider: meetingProvider,
		InterviewerIDs:  req.InterviewerIDs,
		Status:          domain.InterviewStatusScheduled,
		InternalNotes:   req.Notes,
	}
	if err := s.interviewRepo.Create(ctx, iv); err != nil {
		return nil, nil, fmt.Errorf("failed to persist interview: %w", err)
	}

	if req.SyncToCalendar {
		s.mirrorToCalendar(ctx, iv, attendees, outcome)
	}
	outcome.MeetingLink = iv.MeetingLink

	// The interview row is durable at this point, so the fan-out payloads
	// can reference a valid id.
	s.dispatcher.InterviewScheduled(iv, attendees)

	return iv, outcome, nil
}

func (s *interviewService) shouldCallProvider(req *domain.SchedulingRequest, provider, link string) bool {
	if req.Type != domain.InterviewTypeVideo {
		return false
	}
	if provider == "" || provider == domain.ProviderManual {
		return false
	}
	if link != "" {
		return false
	}
	return req.AutoCreateLink
}

// createProviderMeeting calls the gateway exactly once. It returns either
// the join URL or a warning; the scheduled interview record matters more
// than the link existing at creation time.
func (s *interviewService) createProviderMeeting(ctx context.Context, provider string, req *domain.SchedulingRequest, attendees []domain.Attendee) (string, string) {
	gw, ok := s.gateways.Get(provider)
	if !ok {
		return "", fmt.Sprintf("meeting provider %q is not configured; add the meeting link manually", provider)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	m, err := gw.CreateMeeting(callCtx, meeting.Request{
		RequestID:       uuid.NewString(),
		Title:           req.Title,
		Start:           req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Timezone:        req.Timezone,
		Attendees:       attendees,
	})
	if err != nil {
		logger.Warn("Provider meeting creation failed, continuing without a link",
			"provider", provider, "error", err)
		return "", fmt.Sprintf("%s meeting could not be created (%v); add the meeting link manually", provider, err)
	}
	return m.JoinURL, ""
}

// mirrorToCalendar records success or failure on the outcome and may fill
// an empty meeting link with the calendar-provided one. It never changes
// the interview's persisted status.
func (s *interviewService) mirrorToCalendar(ctx context.Context, iv *domain.Interview, attendees []domain.Attendee, outcome *domain.MeetingOutcome) {
	if s.mirror == nil {
		outcome.CalendarSyncStatus = domain.CalendarSyncFailed
		outcome.AddWarning("calendar sync requested but no calendar is configured")
		return
	}

	wantsVideoLink := iv.Type == domain.InterviewTypeVideo && iv.MeetingLink == ""
	created, err := s.mirror.CreateEvent(ctx, calendar.Event{
		Summary:        iv.Title,
		Description:    describeForCalendar(iv),
		Start:          iv.ScheduledAt,
		End:            iv.EndsAt(),
		Timezone:       iv.Timezone,
		Attendees:      attendees,
		WantsVideoLink: wantsVideoLink,
	})
	if err != nil {
		logger.Warn("Calendar sync failed", "interviewID", iv.ID, "error", err)
		outcome.CalendarSyncStatus = domain.CalendarSyncFailed
		outcome.AddWarning("the interview could not be mirrored to the calendar")
		return
	}

	outcome.CalendarSyncStatus = domain.CalendarSyncSucceeded
	if created.VideoLink != "" && iv.MeetingLink == "" {
		iv.MeetingLink = created.VideoLink
		if err := s.interviewRepo.SetMeetingLink(ctx, iv.ID, created.VideoLink, iv.MeetingProvider); err != nil {
			logger.Error("Failed to store calendar-provided meeting link", "interviewID", iv.ID, "error", err)
			outcome.AddWarning("calendar provided a video link but it could not be stored")
		}
	}
}

func describeForCalendar(iv *domain.Interview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interview for application #%d.", iv.ApplicationID)
	if iv.Type == domain.InterviewTypeInPerson && iv.Location != "" {
		fmt.Fprintf(&b, "\nLocation: %s", iv.Location)
	}
	if iv.MeetingLink != "" {
		fmt.Fprintf(&b, "\nJoin: %s", iv.MeetingLink)
	}
	return b.String()
}

func (s *interviewService) Transition(ctx context.Context, interviewID int32, target domain.InterviewStatus, reason string) (*domain.Interview, error) {
	if !domain.ValidStatus(target) {
		return nil, &domain.ValidationError{Reason: "unknown_status", Value: string(target)}
	}

	iv, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	observed := iv.Status
	if !domain.CanTransition(observed, target) {
		return nil, &domain.InvalidTransitionError{From: observed, To: target}
	}

	now := time.Now()
	fields := domain.StatusChange{Status: target}
	switch target {
	case domain.InterviewStatusCompleted:
		fields.CompletedAt = &now
	case domain.InterviewStatusCancelled:
		fields.CancelledAt = &now
		if reason != "" {
			fields.AppendNote = fmt.Sprintf("Cancelled: %s", reason)
		}
	}

	// The store enforces the observed status; a concurrent transition
	// surfaces as InvalidTransitionError rather than last-write-wins.
	updated, err := s.interviewRepo.UpdateStatus(ctx, interviewID, observed, fields)
	if err != nil {
		return nil, err
	}

	attendees := s.resolver.ResolveForInterview(ctx, updated)
	s.dispatcher.InterviewStatusChanged(updated, attendees, reason)

	return updated, nil
}

func (s *interviewService) GetInterview(ctx context.Context, id int32) (*domain.Interview, error) {
	return s.interviewRepo.GetByID(ctx, id)
}

func (s *interviewService) ListByApplication(ctx context.Context, applicationID int32) ([]domain.Interview, error) {
	return s.interviewRepo.ListByApplication(ctx, applicationID)
}

// ScorecardCompletion computes pending as a set difference, not a count
// difference: a scorecard submitted for an interview the interviewer never
// conducted must not offset a genuinely missing one.
func (s *interviewService) ScorecardCompletion(ctx context.Context, interviewerID int32) (*domain.ScorecardCompletion, error) {
	completed, err := s.scorecardRepo.ListCompletedByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, err
	}
	scorecarded, err := s.scorecardRepo.ListScorecardedByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, err
	}

	submittedSet := make(map[int32]bool, len(scorecarded))
	for _, id := range scorecarded {
		submittedSet[id] = true
	}

	var submitted, pending int32
	for _, id := range completed {
		if submittedSet[id] {
			submitted++
		} else {
			pending++
		}
	}

	view := &domain.ScorecardCompletion{Submitted: submitted, Pending: pending}
	if total := submitted + pending; total > 0 {
		view.Rate = float64(submitted) / float64(total)
	}
	return view, nil
}

func validateRequest(req *domain.SchedulingRequest) error {
	if req.ApplicationID <= 0 {
		return &domain.ValidationError{Reason: "missing_application_id"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return &domain.ValidationError{Reason: "missing_title"}
	}
	if req.Type != domain.InterviewTypeVideo && req.Type != domain.InterviewTypeInPerson {
		return &domain.ValidationError{Reason: "invalid_interview_type", Value: string(req.Type)}
	}
	if req.ScheduledAt.IsZero() {
		return &domain.ValidationError{Reason: "missing_scheduled_at"}
	}
	if req.DurationMinutes <= 0 {
		return &domain.ValidationError{Reason: "invalid_duration", Value: fmt.Sprintf("%d", req.DurationMinutes)}
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil || req.Timezone == "" {
		return &domain.ValidationError{Reason: "invalid_timezone", Value: req.Timezone}
	}
	return nil
}
