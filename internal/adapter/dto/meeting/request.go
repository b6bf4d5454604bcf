package meeting

import "github.com/google/uuid"

// CreateMeetingRequest represents the request to schedule a meeting
type CreateMeetingRequest struct {
	Title        string                 `json:"title" validate:"required,min=1,max=255"`
	Description  *string                `json:"description,omitempty"`
	Date         string                 `json:"date" validate:"required"` // "2006-01-02"
	Time         string                 `json:"time" validate:"required"` // "15:04"
	Type         string                 `json:"type" validate:"required,oneof=Online Offline"`
	Platform     string                 `json:"platform,omitempty"`
	Venue        string                 `json:"venue,omitempty"`
	DepartmentID *uuid.UUID             `json:"department_id,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateMeetingRequest represents the request to replace a meeting's
// details. Updates are full replacements, not patches; omitted
// metadata keeps the stored value.
type UpdateMeetingRequest struct {
	Title        string                 `json:"title" validate:"required,min=1,max=255"`
	Description  *string                `json:"description,omitempty"`
	Date         string                 `json:"date" validate:"required"`
	Time         string                 `json:"time" validate:"required"`
	Type         string                 `json:"type" validate:"required,oneof=Online Offline"`
	Platform     string                 `json:"platform,omitempty"`
	Venue        string                 `json:"venue,omitempty"`
	DepartmentID *uuid.UUID             `json:"department_id,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
