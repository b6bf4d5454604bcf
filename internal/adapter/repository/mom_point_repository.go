package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
)

// momPointRepository implements the MomPointRepository interface
type momPointRepository struct {
	db *gorm.DB
}

// NewMomPointRepository creates a new MOM point repository
func NewMomPointRepository(db *gorm.DB) repositories.MomPointRepository {
	return &momPointRepository{db: db}
}

// Create creates a new MOM point together with its assignee relations
func (r *momPointRepository) Create(ctx context.Context, point *entities.MomPoint) error {
	if err := r.db.WithContext(ctx).Create(point).Error; err != nil {
		return fmt.Errorf("failed to create mom point: %w", err)
	}
	return nil
}

// FindByID retrieves a MOM point with meeting and assignees preloaded
func (r *momPointRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MomPoint, error) {
	var point entities.MomPoint
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Assignees").
		Where("id = ?", id).
		First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMomPointNotFound
		}
		return nil, fmt.Errorf("failed to find mom point by ID: %w", err)
	}
	return &point, nil
}

// FindByMeeting retrieves all MOM points of a meeting, oldest first
func (r *momPointRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MomPoint, error) {
	var points []*entities.MomPoint
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Assignees").
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find mom points by meeting: %w", err)
	}
	return points, nil
}

// FindByAssignee retrieves all MOM points assigned to an employee,
// newest first
func (r *momPointRepository) FindByAssignee(ctx context.Context, employeeID uuid.UUID) ([]*entities.MomPoint, error) {
	var points []*entities.MomPoint
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Assignees").
		Joins("JOIN mom_point_assignees mpa ON mpa.mom_point_id = mom_points.id").
		Where("mpa.employee_id = ?", employeeID).
		Order("mom_points.created_at DESC").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find mom points by assignee: %w", err)
	}
	return points, nil
}

// Update replaces the MOM point row and its assignee relations
func (r *momPointRepository) Update(ctx context.Context, point *entities.MomPoint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.MomPoint{}).
			Where("id = ?", point.ID).
			Select("topic", "discussion", "decision", "due_date", "status").
			Updates(point)
		if res.Error != nil {
			return fmt.Errorf("failed to update mom point: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return entities.ErrMomPointNotFound
		}
		if err := tx.Model(point).Association("Assignees").Replace(point.Assignees); err != nil {
			return fmt.Errorf("failed to replace assignees: %w", err)
		}
		return nil
	})
}

// UpdateStatus updates only the status column
func (r *momPointRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&entities.MomPoint{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return fmt.Errorf("failed to update mom point status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrMomPointNotFound
	}
	return nil
}

// Delete deletes a MOM point
func (r *momPointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		point := entities.MomPoint{ID: id}
		if err := tx.Model(&point).Association("Assignees").Clear(); err != nil {
			return fmt.Errorf("failed to clear assignees: %w", err)
		}
		res := tx.Delete(&entities.MomPoint{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete mom point: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return entities.ErrMomPointNotFound
		}
		return nil
	})
}

// CountPending returns the number of MOM points not yet completed
func (r *momPointRepository) CountPending(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.MomPoint{}).
		Where("status <> ?", entities.StatusCompleted).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending mom points: %w", err)
	}
	return total, nil
}
