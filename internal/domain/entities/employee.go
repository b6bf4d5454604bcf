package entities

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a company employee addressable by notifications.
// Superior and head-of-department are nullable self-references; the
// reporting chain is walked through them when resolving recipients.
type Employee struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code          string      `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	Name          string      `json:"name" gorm:"type:varchar(255);not null"`
	Designation   *string     `json:"designation,omitempty" gorm:"type:varchar(255)"`
	CompanyEmail  *string     `json:"company_email,omitempty" gorm:"type:varchar(255)"`
	PersonalEmail *string     `json:"personal_email,omitempty" gorm:"type:varchar(255)"`
	DepartmentID  uuid.UUID   `json:"department_id" gorm:"type:uuid;not null;index"`
	Department    *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	SuperiorID    *uuid.UUID  `json:"superior_id,omitempty" gorm:"type:uuid"`
	Superior      *Employee   `json:"superior,omitempty" gorm:"foreignKey:SuperiorID"`
	HODID         *uuid.UUID  `json:"hod_id,omitempty" gorm:"column:hod_id;type:uuid"`
	HOD           *Employee   `json:"hod,omitempty" gorm:"foreignKey:HODID"`
	UserID        *uuid.UUID  `json:"user_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	IsActive      bool        `json:"is_active" gorm:"default:true;not null"`
	CreatedAt     time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// Emails returns the employee's own addresses, company first.
func (e *Employee) Emails() []string {
	var out []string
	if e.CompanyEmail != nil && *e.CompanyEmail != "" {
		out = append(out, *e.CompanyEmail)
	}
	if e.PersonalEmail != nil && *e.PersonalEmail != "" {
		out = append(out, *e.PersonalEmail)
	}
	return out
}
