package domain

// Notification is an in-app notification row surfaced in the ATS inbox.
// Email delivery runs separately through the notifier; both are fed by the
// side-effect dispatcher.
type Notification struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"user_id"`
	OrgID      int32             `json:"org_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}
