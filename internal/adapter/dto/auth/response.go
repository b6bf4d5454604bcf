package auth

import "time"

// UserResponse represents user information in responses
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	DepartmentID *string    `json:"department_id,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LoginResponse represents the authentication response
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in"` // seconds
	TokenType   string        `json:"token_type"` // "Bearer"
	User        *UserResponse `json:"user"`
}
