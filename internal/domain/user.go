package domain

// OrgUser is an internal staff member resolved from the organization
// directory. Account management itself lives outside this service.
type OrgUser struct {
	ID          int32  `json:"id"`
	OrgID       int32  `json:"org_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Candidate is the applicant attached to an application.
type Candidate struct {
	ApplicationID int32  `json:"application_id"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
}
