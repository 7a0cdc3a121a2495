package calendar

import (
	"context"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"

	"github.com/google/uuid"
	gcal "google.golang.org/api/calendar/v3"
)

// GoogleMirror mirrors interviews onto a Google calendar owned by the
// recruiting team.
type GoogleMirror struct {
	svc        *gcal.Service
	calendarID string
	timeout    time.Duration
}

func NewGoogleMirror(svc *gcal.Service, calendarID string, timeout time.Duration) *GoogleMirror {
	return &GoogleMirror{svc: svc, calendarID: calendarID, timeout: timeout}
}

func (m *GoogleMirror) CreateEvent(ctx context.Context, ev Event) (*CreatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	event := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: ev.Timezone},
		End:         &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: ev.Timezone},
	}
	for _, a := range ev.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{
			Email:       a.Email,
			DisplayName: a.DisplayName,
		})
	}

	call := m.svc.Events.Insert(m.calendarID, event).Context(ctx)
	if ev.WantsVideoLink {
		event.ConferenceData = &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             uuid.NewString(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
		call = call.ConferenceDataVersion(1)
	}

	logger.ExternalServiceCall("google_calendar", "CreateEvent", "summary", ev.Summary)
	created, err := call.Do()
	logger.ExternalServiceResult("google_calendar", "CreateEvent", err)
	if err != nil {
		return nil, &domain.CalendarSyncError{Err: err}
	}

	return &CreatedEvent{EventID: created.Id, VideoLink: created.HangoutLink}, nil
}
