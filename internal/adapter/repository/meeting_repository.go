package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("id = ?", id).
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// List retrieves all meetings with their department, newest first
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("scheduled_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// FindByDay retrieves meetings scheduled within [dayStart, dayEnd)
func (r *meetingRepository) FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayEnd).
		Order("scheduled_at ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find meetings by day: %w", err)
	}
	return meetings, nil
}

// Update updates an existing meeting. The location columns are always
// written so a type switch nulls the stale one; metadata is only
// written when the caller supplied a new value.
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	columns := []string{"title", "description", "scheduled_at", "type", "platform", "venue", "department_id"}
	if meeting.Metadata != nil {
		columns = append(columns, "metadata")
	}

	tx := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meeting.ID).
		Select(columns).
		Updates(meeting)
	if tx.Error != nil {
		return fmt.Errorf("failed to update meeting: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// Delete deletes a meeting
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&entities.Meeting{}, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// Count returns the total number of meetings
func (r *meetingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Meeting{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count meetings: %w", err)
	}
	return total, nil
}
