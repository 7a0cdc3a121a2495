package service

import (
	"context"

	"hireflow-backend/internal/domain"
)

type InterviewService interface {
	// Schedule runs the full orchestration: resolve attendees, create the
	// provider meeting if asked to, persist the interview, mirror to the
	// calendar, fan out side effects. Only a *domain.ValidationError is a
	// caller-visible failure; every downstream degradation lands in the
	// MeetingOutcome.
	Schedule(ctx context.Context, req *domain.SchedulingRequest) (*domain.Interview, *domain.MeetingOutcome, error)
	// Transition moves the interview through its lifecycle. Fails with
	// *domain.InvalidTransitionError from terminal states or on concurrent
	// modification.
	Transition(ctx context.Context, interviewID int32, target domain.InterviewStatus, reason string) (*domain.Interview, error)
	GetInterview(ctx context.Context, id int32) (*domain.Interview, error)
	ListByApplication(ctx context.Context, applicationID int32) ([]domain.Interview, error)
	// ScorecardCompletion recomputes the derived per-interviewer view on
	// every call.
	ScorecardCompletion(ctx context.Context, interviewerID int32) (*domain.ScorecardCompletion, error)
}

// NotificationSender delivers interview emails. The scheduled time is passed
// pre-localized to the interview's timezone.
type NotificationSender interface {
	SendInterviewScheduled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error
	SendInterviewCancelled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime, reason string) error
	SendInterviewReminder(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error
}

// Dispatcher fans out post-operation side effects. Calls return immediately;
// failures are logged, never propagated, and never roll anything back.
type Dispatcher interface {
	InterviewScheduled(iv *domain.Interview, attendees []domain.Attendee)
	InterviewStatusChanged(iv *domain.Interview, attendees []domain.Attendee, reason string)
	// Wait blocks until in-flight dispatches drain. Used on shutdown.
	Wait()
}
