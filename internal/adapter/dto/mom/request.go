package mom

import (
	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/common"
)

// CreatePointRequest represents the request to record a MOM point
type CreatePointRequest struct {
	MeetingID  uuid.UUID       `json:"meeting_id" validate:"required"`
	Topic      string          `json:"topic" validate:"required,min=1,max=255"`
	Discussion string          `json:"discussion" validate:"required"`
	Decision   *string         `json:"decision,omitempty"`
	DueDate    string          `json:"due_date,omitempty"`
	AssignedTo common.UUIDList `json:"assigned_to" validate:"required"`
	Status     string          `json:"status,omitempty"`
}

// UpdatePointRequest represents the request to edit a MOM point.
// Absent fields keep their stored value; a present assigned_to
// replaces the whole assignee set.
type UpdatePointRequest struct {
	Topic      *string         `json:"topic,omitempty" validate:"omitempty,min=1,max=255"`
	Discussion *string         `json:"discussion,omitempty"`
	Decision   *string         `json:"decision,omitempty"`
	DueDate    *string         `json:"due_date,omitempty"`
	AssignedTo common.UUIDList `json:"assigned_to,omitempty"`
	Status     *string         `json:"status,omitempty"`
}

// UpdateStatusRequest represents the assignee-facing status update
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateActionItemRequest represents the request to add an action item
// under a MOM point
type CreateActionItemRequest struct {
	Description string     `json:"description" validate:"required"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
}

// UpdateActionItemRequest represents a partial action item update
type UpdateActionItemRequest struct {
	Description *string    `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *string    `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}
