package calendar

import (
	"context"
	"time"

	"hireflow-backend/internal/domain"
)

// Event is the payload mirrored into the team calendar after an interview
// is persisted.
type Event struct {
	Summary        string
	Description    string
	Start          time.Time
	End            time.Time
	Timezone       string
	Attendees      []domain.Attendee
	WantsVideoLink bool
}

// CreatedEvent reports the mirrored event. VideoLink is set when the
// calendar attached a hosted conference to the event.
type CreatedEvent struct {
	EventID   string
	VideoLink string
}

// Mirror copies an interview into an external calendar. Failures are
// returned as *domain.CalendarSyncError and never block scheduling.
type Mirror interface {
	CreateEvent(ctx context.Context, ev Event) (*CreatedEvent, error)
}
