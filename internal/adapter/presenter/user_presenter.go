package presenter

import (
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/auth"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *auth.UserResponse {
	if u == nil {
		return nil
	}

	response := &auth.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}

	if u.DepartmentID != nil {
		id := u.DepartmentID.String()
		response.DepartmentID = &id
	}

	return response
}
