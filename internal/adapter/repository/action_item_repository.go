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

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create creates a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create action item: %w", err)
	}
	return nil
}

// FindByID retrieves an action item by ID
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to find action item by ID: %w", err)
	}
	return &item, nil
}

// FindByMomPoint retrieves all action items of a MOM point ordered by due date
func (r *actionItemRepository) FindByMomPoint(ctx context.Context, momPointID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("mom_point_id = ?", momPointID).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find action items by mom point: %w", err)
	}
	return items, nil
}

// FindPending retrieves all items not completed, ordered by due date
func (r *actionItemRepository) FindPending(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("MomPoint").
		Preload("MomPoint.Meeting").
		Where("status <> ?", entities.StatusCompleted).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending action items: %w", err)
	}
	return items, nil
}

// Update updates an existing action item
func (r *actionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	tx := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", item.ID).
		Select("description", "assignee_id", "due_date", "status").
		Updates(item)
	if tx.Error != nil {
		return fmt.Errorf("failed to update action item: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrActionItemNotFound
	}
	return nil
}

// UpdateStatus updates only the status column
func (r *actionItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return fmt.Errorf("failed to update action item status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrActionItemNotFound
	}
	return nil
}

// Delete deletes an action item
func (r *actionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&entities.ActionItem{}, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete action item: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrActionItemNotFound
	}
	return nil
}
