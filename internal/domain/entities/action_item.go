package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is a follow-up task owned by a MOM point, with a single
// assignee.
type ActionItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MomPointID  uuid.UUID  `json:"mom_point_id" gorm:"type:uuid;not null;index"`
	MomPoint    *MomPoint  `json:"mom_point,omitempty" gorm:"foreignKey:MomPointID"`
	Description string     `json:"description" gorm:"type:text;not null"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	Assignee    *Employee  `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'Assigned';index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}
