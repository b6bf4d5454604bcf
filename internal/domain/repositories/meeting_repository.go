package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID with department preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves all meetings with their department, newest first
	List(ctx context.Context) ([]*entities.Meeting, error)

	// FindByDay retrieves meetings scheduled within [dayStart, dayEnd)
	// ordered by time
	FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*entities.Meeting, error)

	// Update updates an existing meeting, reporting entities.ErrMeetingNotFound
	// when no row is affected
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting, reporting entities.ErrMeetingNotFound
	// when no row is affected
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of meetings
	Count(ctx context.Context) (int64, error)
}
