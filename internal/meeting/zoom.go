package meeting

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"hireflow-backend/internal/config"
	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

const zoomTokenURL = "https://zoom.us/oauth/token"

// ZoomGateway talks to the Zoom REST API using a server-to-server OAuth app
// (account_credentials grant).
type ZoomGateway struct {
	accountID    string
	clientID     string
	clientSecret string
	client       *resty.Client

	mu    sync.Mutex
	token *oauth2.Token
}

func NewZoomGateway(cfg config.ZoomConfig, timeout time.Duration) *ZoomGateway {
	return &ZoomGateway{
		accountID:    cfg.AccountID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		client:       resty.New().SetBaseURL(cfg.BaseURL).SetTimeout(timeout),
	}
}

func (g *ZoomGateway) ProviderID() string { return "zoom" }

type zoomMeetingRequest struct {
	Topic     string           `json:"topic"`
	Type      int              `json:"type"` // 2 = scheduled meeting
	StartTime string           `json:"start_time"`
	Duration  int32            `json:"duration"`
	Timezone  string           `json:"timezone"`
	Settings  zoomMeetingOpts  `json:"settings"`
}

type zoomMeetingOpts struct {
	Invitees []zoomInvitee `json:"meeting_invitees,omitempty"`
}

type zoomInvitee struct {
	Email string `json:"email"`
}

type zoomMeetingResponse struct {
	ID      int64  `json:"id"`
	JoinURL string `json:"join_url"`
}

func (g *ZoomGateway) CreateMeeting(ctx context.Context, req Request) (*Meeting, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: domain.ProviderErrUnauthenticated, Err: err}
	}

	invitees := make([]zoomInvitee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		invitees = append(invitees, zoomInvitee{Email: a.Email})
	}

	body := zoomMeetingRequest{
		Topic:     req.Title,
		Type:      2,
		StartTime: req.Start.UTC().Format("2006-01-02T15:04:05Z"),
		Duration:  req.DurationMinutes,
		Timezone:  req.Timezone,
		Settings:  zoomMeetingOpts{Invitees: invitees},
	}

	logger.ExternalServiceCall("zoom", "CreateMeeting", "title", req.Title)
	var out zoomMeetingResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("X-Request-Id", req.RequestID).
		SetBody(body).
		SetResult(&out).
		Post("/v2/users/me/meetings")
	if err != nil {
		logger.ExternalServiceResult("zoom", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: domain.ProviderErrUnavailable, Err: err}
	}
	if resp.IsError() {
		kind := kindForStatus(resp.StatusCode())
		err := fmt.Errorf("zoom returned status %d: %s", resp.StatusCode(), resp.String())
		logger.ExternalServiceResult("zoom", "CreateMeeting", err)
		return nil, &domain.ProviderError{Provider: g.ProviderID(), Kind: kind, Err: err}
	}
	logger.ExternalServiceResult("zoom", "CreateMeeting", nil, "meetingID", out.ID)

	return &Meeting{
		JoinURL:           out.JoinURL,
		ProviderMeetingID: strconv.FormatInt(out.ID, 10),
	}, nil
}

type zoomTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken returns a cached account-credentials token, refreshing it when
// it is within a minute of expiry.
func (g *ZoomGateway) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token.Valid() {
		return g.token.AccessToken, nil
	}

	var out zoomTokenResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBasicAuth(g.clientID, g.clientSecret).
		SetQueryParams(map[string]string{
			"grant_type": "account_credentials",
			"account_id": g.accountID,
		}).
		SetResult(&out).
		Post(zoomTokenURL)
	if err != nil {
		return "", fmt.Errorf("zoom token request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("zoom token request failed with status %d", resp.StatusCode())
	}

	g.token = &oauth2.Token{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		Expiry:      time.Now().Add(time.Duration(out.ExpiresIn-60) * time.Second),
	}
	return g.token.AccessToken, nil
}
