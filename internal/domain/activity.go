package domain

import "time"

// Activity types written by this core. The ATS activity feed renders them
// per application.
const (
	ActivityInterviewScheduled = "INTERVIEW_SCHEDULED"
	ActivityInterviewStatus    = "INTERVIEW_STATUS_CHANGED"
)

type Activity struct {
	ID            string            `json:"id"`
	ApplicationID int32             `json:"application_id"`
	Type          string            `json:"activity_type"`
	Description   string            `json:"description"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedOn     time.Time         `json:"created_on"`
}
