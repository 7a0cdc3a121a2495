package domain

import "time"

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusConfirmed InterviewStatus = "CONFIRMED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
	InterviewStatusNoShow    InterviewStatus = "NO_SHOW"
)

type InterviewType string

const (
	InterviewTypeVideo    InterviewType = "VIDEO"
	InterviewTypeInPerson InterviewType = "IN_PERSON"
)

// transitions is the exhaustive table of allowed status changes.
// COMPLETED, CANCELLED and NO_SHOW are terminal.
var transitions = map[InterviewStatus][]InterviewStatus{
	InterviewStatusScheduled: {InterviewStatusConfirmed, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusNoShow},
	InterviewStatusConfirmed: {InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusNoShow},
	InterviewStatusCompleted: {},
	InterviewStatusCancelled: {},
	InterviewStatusNoShow:    {},
}

// CanTransition reports whether an interview in status from may move to to.
func CanTransition(from, to InterviewStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transitions are accepted.
func IsTerminalStatus(s InterviewStatus) bool {
	return len(transitions[s]) == 0
}

// ValidStatus reports whether s is a known interview status.
func ValidStatus(s InterviewStatus) bool {
	_, ok := transitions[s]
	return ok
}

type Interview struct {
	ID              int32           `json:"id"`
	ApplicationID   int32           `json:"application_id"`
	Title           string          `json:"title"`
	Type            InterviewType   `json:"interview_type"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	Timezone        string          `json:"timezone"` // IANA id the instant was scheduled in
	DurationMinutes int32           `json:"duration_minutes"`
	Location        string          `json:"location,omitempty"`
	MeetingLink     string          `json:"meeting_link,omitempty"`
	MeetingProvider string          `json:"meeting_provider,omitempty"`
	InterviewerIDs  []int32         `json:"interviewer_ids"`
	Status          InterviewStatus `json:"status"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	InternalNotes   string          `json:"internal_notes,omitempty"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}

// StatusChange carries the fields a lifecycle transition writes alongside
// the new status.
type StatusChange struct {
	Status      InterviewStatus
	CompletedAt *time.Time
	CancelledAt *time.Time
	// AppendNote is appended to internal_notes (e.g. a cancellation reason).
	AppendNote string
}

// LocalStart returns the scheduled instant expressed in the interview's
// stored timezone. The stored instant is never mutated; this is a display
// conversion only. Falls back to UTC if the timezone id no longer resolves.
func (i *Interview) LocalStart() time.Time {
	loc, err := time.LoadLocation(i.Timezone)
	if err != nil {
		return i.ScheduledAt.UTC()
	}
	return i.ScheduledAt.In(loc)
}

func (i *Interview) EndsAt() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}
