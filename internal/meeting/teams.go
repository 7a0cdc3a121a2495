package meeting

import (
	"context"
	"fmt"
	"time"

	"hireflow-backend/internal/config"
	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TeamsGateway creates online meetings through the Microsoft Graph API with
// an application (client-credentials) token.
type TeamsGateway struct {
	organizerID string
	client      *resty.Client
	tokens      oauth2.TokenSource
}

func NewTeamsGateway(cfg config.TeamsConfig, timeout time.Duration) *TeamsGateway {
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}
	return &TeamsGateway{
		organizerID: cfg.OrganizerID,
		client:      resty.New().SetBaseURL(cfg.BaseURL).SetTimeout(timeout),
		tokens:      creds.TokenSource(context.Background()),
	}
}

func (g *TeamsGateway) ProviderID() string { return "teams" }

type teamsMeetingRequest struct {
	Subject       string            `json:"subject"`
	StartDateTime string            `json:"startDateTime"`
	EndDateTime   string            `json:"endDateTime"`
	Participants  teamsParticipants `json:"participants"`
}

type teamsParticipants struct {
	Attendees []teamsAttendee `json:"attendees,omitempty"`
}

type teamsAttendee struct {
	Upn string `json:"upn"`
}

type teamsMeetingResponse struct {
	ID         string `json:"id"`
	JoinWebURL string `json:"joinWebUrl"`
}

func (g *TeamsGateway) CreateMeeting(ctx context.Context, req Request) (*Meeting, error) {
	// The token source caches and refreshes the app token between calls.
	token, err := g.tokens.Token()
	if err != nil {
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: domain.ProviderErrUnauthenticated, Err: err}
	}

	attendees := make([]teamsAttendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, teamsAttendee{Upn: a.Email})
	}

	end := req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	body := teamsMeetingRequest{
		Subject:       req.Title,
		StartDateTime: req.Start.UTC().Format(time.RFC3339),
		EndDateTime:   end.UTC().Format(time.RFC3339),
		Participants:  teamsParticipants{Attendees: attendees},
	}

	logger.ExternalServiceCall("teams", "CreateMeeting", "subject", req.Title)
	var out teamsMeetingResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("client-request-id", req.RequestID).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/v1.0/users/%s/onlineMeetings", g.organizerID))
	if err != nil {
		logger.ExternalServiceResult("teams", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: domain.ProviderErrUnavailable, Err: err}
	}
	if resp.IsError() {
		kind := kindForStatus(resp.StatusCode())
		err := fmt.Errorf("graph returned status %d: %s", resp.StatusCode(), resp.String())
		logger.ExternalServiceResult("teams", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: kind, Err: err}
	}
	logger.ExternalServiceResult("teams", "CreateMeeting", nil, "meetingID", out.ID)

	return &Meeting{JoinURL: out.JoinWebURL, ProviderMeetingID: out.ID}, nil
}
