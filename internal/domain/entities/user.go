package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents a login account in the system
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose in JSON
	Role         UserRole   `json:"role" gorm:"type:varchar(50);default:'employee';not null"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true;not null"`

	// Preferences (stored as JSONB in PostgreSQL)
	NotificationPreferences datatypes.JSON `json:"notification_preferences" gorm:"type:jsonb;default:'{}'"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty" gorm:"type:timestamp"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// NewUser creates a new user with default values
func NewUser(email, name, passwordHash string) *User {
	notifPrefs, _ := json.Marshal(map[string]interface{}{
		"email": true,
	})

	return &User{
		ID:                      uuid.New(),
		Email:                   email,
		Name:                    name,
		PasswordHash:            passwordHash,
		Role:                    RoleEmployee,
		IsActive:                true,
		NotificationPreferences: notifPrefs,
	}
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// IsAdmin checks if user is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
