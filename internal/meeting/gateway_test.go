package meeting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hireflow-backend/internal/config"
	"hireflow-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func TestKindForStatus(t *testing.T) {
	cases := []struct {
		code int
		kind domain.ProviderErrorKind
	}{
		{401, domain.ProviderErrUnauthenticated},
		{403, domain.ProviderErrUnauthenticated},
		{429, domain.ProviderErrRateLimited},
		{400, domain.ProviderErrInvalidRequest},
		{404, domain.ProviderErrInvalidRequest},
		{422, domain.ProviderErrInvalidRequest},
		{500, domain.ProviderErrUnavailable},
		{502, domain.ProviderErrUnavailable},
		{503, domain.ProviderErrUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, kindForStatus(tc.code), "status %d", tc.code)
	}
}

func TestRegistry(t *testing.T) {
	zoom := newTestZoomGateway("http://unused")
	r := NewRegistry(zoom)

	got, ok := r.Get("zoom")
	assert.True(t, ok)
	assert.Equal(t, zoom, got)

	_, ok = r.Get("teams")
	assert.False(t, ok)

	assert.Equal(t, []string{"zoom"}, r.Providers())
}

func newTestZoomGateway(baseURL string) *ZoomGateway {
	g := NewZoomGateway(config.ZoomConfig{
		BaseURL:   baseURL,
		AccountID: "acct",
		ClientID:  "id",
	}, 2*time.Second)
	// pre-prime the token cache so tests never hit the real token endpoint
	g.token = &oauth2.Token{AccessToken: "test-token", Expiry: time.Now().Add(time.Hour)}
	return g
}

func TestZoomGateway_CreateMeeting(t *testing.T) {
	ctx := context.Background()
	req := Request{
		RequestID:       "req-1",
		Title:           "Technical Screen",
		Start:           time.Date(2026, 9, 14, 15, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Timezone:        "America/New_York",
		Attendees:       []domain.Attendee{{Email: "cand@mail.com"}},
	}

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/users/me/meetings", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 987, "join_url": "https://zoom.us/j/987"}`))
		}))
		defer srv.Close()

		g := newTestZoomGateway(srv.URL)
		m, err := g.CreateMeeting(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "https://zoom.us/j/987", m.JoinURL)
		assert.Equal(t, "987", m.ProviderMeetingID)
	})

	t.Run("RateLimited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		g := newTestZoomGateway(srv.URL)
		_, err := g.CreateMeeting(ctx, req)

		var perr *domain.ProviderError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, "zoom", perr.Provider)
		assert.Equal(t, domain.ProviderErrRateLimited, perr.Kind)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		g := newTestZoomGateway(srv.URL)
		_, err := g.CreateMeeting(ctx, req)

		var perr *domain.ProviderError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, domain.ProviderErrUnauthenticated, perr.Kind)
	})

	t.Run("ServerDown", func(t *testing.T) {
		g := newTestZoomGateway("http://127.0.0.1:1")
		_, err := g.CreateMeeting(ctx, req)

		var perr *domain.ProviderError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, domain.ProviderErrUnavailable, perr.Kind)
	})
}
