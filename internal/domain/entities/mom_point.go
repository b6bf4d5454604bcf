package entities

import (
	"time"

	"github.com/google/uuid"
)

// MomPoint is a recorded discussion item within a meeting's minutes.
// Assignees are a proper many-to-many relation through the
// mom_point_assignees join table.
type MomPoint struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID  uuid.UUID   `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting    *Meeting    `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	Topic      string      `json:"topic" gorm:"type:varchar(255);not null"`
	Discussion string      `json:"discussion" gorm:"type:text;not null"`
	Decision   *string     `json:"decision,omitempty" gorm:"type:text"`
	DueDate    *time.Time  `json:"due_date,omitempty"`
	Status     TaskStatus  `json:"status" gorm:"type:varchar(20);not null;default:'Assigned';index"`
	Assignees  []*Employee `json:"assignees,omitempty" gorm:"many2many:mom_point_assignees"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"autoUpdateTime"`

	ActionItems []*ActionItem `json:"action_items,omitempty" gorm:"foreignKey:MomPointID"`
}

// TableName specifies the table name for MomPoint
func (MomPoint) TableName() string {
	return "mom_points"
}

// HasAssignee reports whether the employee is in the assignee set
func (p *MomPoint) HasAssignee(employeeID uuid.UUID) bool {
	for _, a := range p.Assignees {
		if a.ID == employeeID {
			return true
		}
	}
	return false
}

// AssigneeIDs returns the assignee identifiers
func (p *MomPoint) AssigneeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Assignees))
	for _, a := range p.Assignees {
		ids = append(ids, a.ID)
	}
	return ids
}
