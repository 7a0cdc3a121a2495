package domain

import "time"

// ProviderManual means no gateway is called; the organizer supplies (or
// later adds) the meeting link themselves.
const ProviderManual = "manual"

// SchedulingRequest is the ephemeral input for one scheduling operation.
type SchedulingRequest struct {
	ApplicationID   int32         `json:"application_id"`
	Title           string        `json:"title"`
	Type            InterviewType `json:"interview_type"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	Timezone        string        `json:"timezone"`
	DurationMinutes int32         `json:"duration_minutes"`
	Location        string        `json:"location"`
	Provider        string        `json:"meeting_provider"` // provider id or "manual"
	MeetingLink     string        `json:"meeting_link"`     // pre-supplied link, if any
	InterviewerIDs  []int32       `json:"interviewer_ids"`
	GuestEmails     []string      `json:"guest_emails"`
	Notes           string        `json:"internal_notes"`
	SyncToCalendar  bool          `json:"sync_to_calendar"`
	AutoCreateLink  bool          `json:"auto_create_link"`
}

type AttendeeOrigin string

const (
	AttendeeOriginInterviewer AttendeeOrigin = "interviewer"
	AttendeeOriginCandidate   AttendeeOrigin = "candidate"
	AttendeeOriginExternal    AttendeeOrigin = "external"
)

// Attendee is a resolved meeting participant. No two attendees in a
// resolved list share an email (case-insensitive).
type Attendee struct {
	Email       string         `json:"email"`
	DisplayName string         `json:"display_name,omitempty"`
	Origin      AttendeeOrigin `json:"origin"`
}

type CalendarSyncStatus string

const (
	CalendarSyncSkipped   CalendarSyncStatus = "skipped"
	CalendarSyncSucceeded CalendarSyncStatus = "succeeded"
	CalendarSyncFailed    CalendarSyncStatus = "failed"
)

// MeetingOutcome reports what succeeded and what degraded during one
// orchestration attempt. Warnings never imply the interview was not created.
type MeetingOutcome struct {
	MeetingLink        string             `json:"meeting_link,omitempty"`
	Provider           string             `json:"meeting_provider,omitempty"`
	CalendarSyncStatus CalendarSyncStatus `json:"calendar_sync_status"`
	Warnings           []string           `json:"warnings,omitempty"`
}

func (o *MeetingOutcome) AddWarning(w string) {
	o.Warnings = append(o.Warnings, w)
}

// ScorecardCompletion is the derived per-interviewer view. Recomputed on
// every read, never cached.
type ScorecardCompletion struct {
	Submitted int32   `json:"submitted"`
	Pending   int32   `json:"pending"`
	Rate      float64 `json:"rate"`
}
