package meeting

import (
	"context"
	"time"

	"hireflow-backend/internal/domain"
)

// Request describes the meeting to create on a provider. RequestID is sent
// as an idempotency hint where the provider supports one.
type Request struct {
	RequestID       string
	Title           string
	Start           time.Time
	DurationMinutes int32
	Timezone        string
	Attendees       []domain.Attendee
}

// Meeting is the provider's answer: where to join and the provider-native id.
type Meeting struct {
	JoinURL           string
	ProviderMeetingID string
}

// Gateway creates a remote video meeting on one named provider. A failed
// call returns *domain.ProviderError; there is never an automatic retry
// within the same scheduling attempt.
type Gateway interface {
	ProviderID() string
	CreateMeeting(ctx context.Context, req Request) (*Meeting, error)
}

// Registry holds the configured gateways keyed by provider id.
type Registry struct {
	gateways map[string]Gateway
}

func NewRegistry(gateways ...Gateway) *Registry {
	r := &Registry{gateways: make(map[string]Gateway)}
	for _, g := range gateways {
		r.gateways[g.ProviderID()] = g
	}
	return r
}

func (r *Registry) Get(providerID string) (Gateway, bool) {
	g, ok := r.gateways[providerID]
	return g, ok
}

func (r *Registry) Providers() []string {
	ids := make([]string, 0, len(r.gateways))
	for id := range r.gateways {
		ids = append(ids, id)
	}
	return ids
}

// kindForStatus maps a provider HTTP status into the shared error taxonomy.
// The taxonomy is deliberately provider-agnostic.
func kindForStatus(code int) domain.ProviderErrorKind {
	switch {
	case code == 401 || code == 403:
		return domain.ProviderErrUnauthenticated
	case code == 429:
		return domain.ProviderErrRateLimited
	case code == 400 || code == 404 || code == 422:
		return domain.ProviderErrInvalidRequest
	default:
		return domain.ProviderErrUnavailable
	}
}
