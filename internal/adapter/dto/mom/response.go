package mom

import "time"

// AssigneeResponse represents an assignee inside a point response
type AssigneeResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PointResponse represents a MOM point in responses. AssignedToNames
// concatenates the assignee names for list displays.
type PointResponse struct {
	ID              string                `json:"id"`
	MeetingID       string                `json:"meeting_id"`
	MeetingTitle    string                `json:"meeting_title,omitempty"`
	Topic           string                `json:"topic"`
	Discussion      string                `json:"discussion"`
	Decision        *string               `json:"decision,omitempty"`
	DueDate         *time.Time            `json:"due_date,omitempty"`
	Status          string                `json:"status"`
	Assignees       []AssigneeResponse    `json:"assignees"`
	AssignedToNames string                `json:"assigned_to_names"`
	ActionItems     []*ActionItemResponse `json:"action_items,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID           string     `json:"id"`
	MomPointID   string     `json:"mom_point_id"`
	Description  string     `json:"description"`
	AssigneeID   *string    `json:"assignee_id,omitempty"`
	AssigneeName string     `json:"assignee_name,omitempty"`
	Topic        string     `json:"topic,omitempty"`
	MeetingTitle string     `json:"meeting_title,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
