package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID retrieves a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindActiveByEmail retrieves an active user by email
	FindActiveByEmail(ctx context.Context, email string) (*entities.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
