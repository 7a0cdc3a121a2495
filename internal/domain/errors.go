package domain

import "fmt"

// ValidationError is fatal to the current operation: nothing is created or
// mutated, and it is surfaced directly to the caller.
type ValidationError struct {
	Reason string
	Value  string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s (%q)", e.Reason, e.Value)
}

type ProviderErrorKind string

const (
	ProviderErrUnauthenticated ProviderErrorKind = "unauthenticated"
	ProviderErrRateLimited     ProviderErrorKind = "rate_limited"
	ProviderErrInvalidRequest  ProviderErrorKind = "invalid_request"
	ProviderErrUnavailable     ProviderErrorKind = "unavailable"
)

// ProviderError is a third-party meeting-creation failure. Non-fatal to
// scheduling: it degrades to a warning in the MeetingOutcome. There is no
// automatic retry within a scheduling attempt.
type ProviderError struct {
	Provider string
	Kind     ProviderErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CalendarSyncError is non-fatal; recorded as calendar_sync_status=failed.
type CalendarSyncError struct {
	Err error
}

func (e *CalendarSyncError) Error() string {
	return fmt.Sprintf("calendar sync failed: %v", e.Err)
}

func (e *CalendarSyncError) Unwrap() error { return e.Err }

// DispatchError is best-effort territory: logged, never surfaced to callers.
type DispatchError struct {
	Target string // "notification" or "activity_log"
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to %s failed: %v", e.Target, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// InvalidTransitionError is returned for a transition out of a terminal
// state or from a status the caller did not observe (concurrent change).
// The caller must re-fetch current state.
type InvalidTransitionError struct {
	From InterviewStatus
	To   InterviewStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid interview transition %s -> %s", e.From, e.To)
}
