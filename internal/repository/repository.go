package repository

import (
	"context"

	"hireflow-backend/internal/domain"
)

type InterviewRepository interface {
	Create(ctx context.Context, iv *domain.Interview) error
	GetByID(ctx context.Context, id int32) (*domain.Interview, error)
	ListByApplication(ctx context.Context, applicationID int32) ([]domain.Interview, error)
	// UpdateStatus moves an interview from expected to the fields' status.
	// It must not apply the update if the stored status differs from
	// expected (optimistic concurrency); in that case it returns
	// domain.InvalidTransitionError with the stored status as From.
	UpdateStatus(ctx context.Context, id int32, expected domain.InterviewStatus, fields domain.StatusChange) (*domain.Interview, error)
	// SetMeetingLink fills the meeting link after the fact (calendar-provided
	// link, or organizer pasting one manually).
	SetMeetingLink(ctx context.Context, id int32, link, provider string) error
	// ListScheduledBetween returns non-terminal interviews starting inside
	// [from, to), used by the reminder job.
	ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Interview, error)
}

type DirectoryRepository interface {
	// GetUsersByIDs returns the resolvable subset; missing ids are simply
	// absent from the result.
	GetUsersByIDs(ctx context.Context, ids []int32) ([]domain.OrgUser, error)
}

type CandidateRepository interface {
	GetByApplicationID(ctx context.Context, applicationID int32) (*domain.Candidate, error)
}

type ScorecardRepository interface {
	// ListCompletedByInterviewer returns ids of COMPLETED interviews the
	// interviewer was assigned to conduct.
	ListCompletedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error)
	// ListScorecardedByInterviewer returns distinct interview ids for which
	// the interviewer has submitted a scorecard.
	ListScorecardedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error)
}

type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.Activity) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
