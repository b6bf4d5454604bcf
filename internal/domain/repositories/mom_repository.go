package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// MomPointRepository defines the interface for MOM point data access
type MomPointRepository interface {
	// Create creates a new MOM point together with its assignee relations
	Create(ctx context.Context, point *entities.MomPoint) error

	// FindByID retrieves a MOM point with meeting and assignees preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MomPoint, error)

	// FindByMeeting retrieves all MOM points of a meeting with meeting
	// and assignees preloaded, oldest first
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MomPoint, error)

	// FindByAssignee retrieves all MOM points whose assignee set
	// contains the employee, newest first
	FindByAssignee(ctx context.Context, employeeID uuid.UUID) ([]*entities.MomPoint, error)

	// Update replaces the MOM point row and its assignee relations
	Update(ctx context.Context, point *entities.MomPoint) error

	// UpdateStatus updates only the status column
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error

	// Delete deletes a MOM point, reporting entities.ErrMomPointNotFound
	// when no row is affected
	Delete(ctx context.Context, id uuid.UUID) error

	// CountPending returns the number of MOM points not yet completed
	CountPending(ctx context.Context) (int64, error)
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create creates a new action item
	Create(ctx context.Context, item *entities.ActionItem) error

	// FindByID retrieves an action item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// FindByMomPoint retrieves all action items of a MOM point ordered
	// by due date
	FindByMomPoint(ctx context.Context, momPointID uuid.UUID) ([]*entities.ActionItem, error)

	// FindPending retrieves all items not completed with their parent
	// point and meeting preloaded, ordered by due date
	FindPending(ctx context.Context) ([]*entities.ActionItem, error)

	// Update updates an existing action item
	Update(ctx context.Context, item *entities.ActionItem) error

	// UpdateStatus updates only the status column
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error

	// Delete deletes an action item, reporting entities.ErrActionItemNotFound
	// when no row is affected
	Delete(ctx context.Context, id uuid.UUID) error
}
