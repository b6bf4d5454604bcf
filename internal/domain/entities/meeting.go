package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingType represents how a meeting is held
type MeetingType string

const (
	MeetingTypeOnline  MeetingType = "Online"
	MeetingTypeOffline MeetingType = "Offline"
)

// IsValid checks if the meeting type is valid
func (t MeetingType) IsValid() bool {
	return t == MeetingTypeOnline || t == MeetingTypeOffline
}

// Meeting represents a scheduled meeting. The type determines which
// location attribute is set: platform for Online, venue for Offline.
// The other one is always NULL.
type Meeting struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string         `json:"title" gorm:"type:varchar(255);not null"`
	Description  *string        `json:"description,omitempty" gorm:"type:text"`
	ScheduledAt  time.Time      `json:"scheduled_at" gorm:"not null;index"`
	Type         MeetingType    `json:"type" gorm:"type:varchar(20);not null"`
	Platform     *string        `json:"platform,omitempty" gorm:"type:varchar(255)"`
	Venue        *string        `json:"venue,omitempty" gorm:"type:varchar(255)"`
	DepartmentID *uuid.UUID     `json:"department_id,omitempty" gorm:"type:uuid;index"`
	Department   *Department    `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	CreatedBy    uuid.UUID      `json:"created_by" gorm:"type:uuid;not null"`
	Creator      *User          `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Metadata     datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb;default:'{}'"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// Location returns the type-appropriate location attribute
func (m *Meeting) Location() string {
	switch m.Type {
	case MeetingTypeOnline:
		if m.Platform != nil {
			return *m.Platform
		}
	case MeetingTypeOffline:
		if m.Venue != nil {
			return *m.Venue
		}
	}
	return ""
}

// NormalizeLocation clears the location attribute that does not match
// the meeting type.
func (m *Meeting) NormalizeLocation() {
	switch m.Type {
	case MeetingTypeOnline:
		m.Venue = nil
	case MeetingTypeOffline:
		m.Platform = nil
	}
}
