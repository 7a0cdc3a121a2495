package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// MeetGateway provisions a Google Meet room by inserting a calendar event
// with a conference-data request. Google has no standalone meeting-creation
// endpoint; the event on the recruiting calendar is the meeting.
type MeetGateway struct {
	svc        *calendar.Service
	calendarID string
	timeout    time.Duration
}

func NewMeetGateway(svc *calendar.Service, calendarID string, timeout time.Duration) *MeetGateway {
	return &MeetGateway{svc: svc, calendarID: calendarID, timeout: timeout}
}

func (g *MeetGateway) ProviderID() string { return "meet" }

func (g *MeetGateway) CreateMeeting(ctx context.Context, req Request) (*Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	end := req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	event := &calendar.Event{
		Summary: req.Title,
		Start:   &calendar.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: req.Timezone},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: req.Timezone},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             req.RequestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}
	for _, a := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{
			Email:       a.Email,
			DisplayName: a.DisplayName,
		})
	}

	logger.ExternalServiceCall("meet", "CreateMeeting", "title", req.Title)
	created, err := g.svc.Events.Insert(g.calendarID, event).ConferenceDataVersion(1).Context(ctx).Do()
	if err != nil {
		logger.ExternalServiceResult("meet", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: googleErrorKind(err), Err: err}
	}
	if created.HangoutLink == "" {
		err := fmt.Errorf("event %s created without a conference link", created.Id)
		logger.ExternalServiceResult("meet", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: domain.ProviderErrInvalidRequest, Err: err}
	}
	logger.ExternalServiceResult("meet", "CreateMeeting", nil, "eventID", created.Id)

	return &Meeting{JoinURL: created.HangoutLink, ProviderMeetingID: created.Id}, nil
}

func googleErrorKind(err error) domain.ProviderErrorKind {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return kindForStatus(apiErr.Code)
	}
	// Transport failures and exceeded deadlines both read as the provider
	// being unavailable for this attempt.
	return domain.ProviderErrUnavailable
}
