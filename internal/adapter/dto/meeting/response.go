package meeting

import "time"

// MeetingResponse represents a meeting in responses. Location carries
// the platform for Online meetings and the venue for Offline ones.
type MeetingResponse struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Description  *string                `json:"description,omitempty"`
	ScheduledAt  time.Time              `json:"scheduled_at"`
	Type         string                 `json:"type"`
	Platform     *string                `json:"platform,omitempty"`
	Venue        *string                `json:"venue,omitempty"`
	Location     string                 `json:"location"`
	DepartmentID *string                `json:"department_id,omitempty"`
	Department   *string                `json:"department,omitempty"`
	CreatedBy    string                 `json:"created_by"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
