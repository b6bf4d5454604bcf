package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

const dueDateLayout = "2006-01-02"

// Service handles action item business logic. Action items are
// sub-tasks hanging off a MOM point, each with a single optional
// assignee.
type Service struct {
	actionRepo   repositories.ActionItemRepository
	pointRepo    repositories.MomPointRepository
	employeeRepo repositories.EmployeeRepository
	strictPolicy bool
}

// NewService creates a new action item service
func NewService(
	actionRepo repositories.ActionItemRepository,
	pointRepo repositories.MomPointRepository,
	employeeRepo repositories.EmployeeRepository,
	strictPolicy bool,
) *Service {
	return &Service{
		actionRepo:   actionRepo,
		pointRepo:    pointRepo,
		employeeRepo: employeeRepo,
		strictPolicy: strictPolicy,
	}
}

// CreateItemInput contains the data needed to create an action item
type CreateItemInput struct {
	MomPointID  uuid.UUID
	Description string
	AssigneeID  *uuid.UUID
	DueDate     string // optional, "2006-01-02"
}

// UpdateItemInput contains the fields of a partial action item update.
// Nil pointers leave the current value untouched.
type UpdateItemInput struct {
	Description *string
	AssigneeID  *uuid.UUID
	DueDate     *string
	Status      *entities.TaskStatus
}

// CreateItem records a new action item under an existing MOM point
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*entities.ActionItem, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.pointRepo.FindByID(ctx, input.MomPointID); err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}

	if input.AssigneeID != nil {
		if _, err := s.employeeRepo.FindByID(ctx, *input.AssigneeID); err != nil {
			if errors.Is(err, entities.ErrEmployeeNotFound) {
				return nil, usecaseErrors.ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	item := &entities.ActionItem{
		MomPointID:  input.MomPointID,
		Description: strings.TrimSpace(input.Description),
		AssigneeID:  input.AssigneeID,
		Status:      entities.StatusAssigned,
	}

	if input.DueDate != "" {
		due, err := time.Parse(dueDateLayout, input.DueDate)
		if err != nil {
			return nil, usecaseErrors.ErrInvalidInput
		}
		item.DueDate = &due
	}

	if err := s.actionRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves a single action item
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ItemsByMomPoint retrieves the action items of a MOM point
func (s *Service) ItemsByMomPoint(ctx context.Context, momPointID uuid.UUID) ([]*entities.ActionItem, error) {
	if _, err := s.pointRepo.FindByID(ctx, momPointID); err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}
	return s.actionRepo.FindByMomPoint(ctx, momPointID)
}

// PendingItems retrieves every action item not yet completed, with the
// parent point and meeting loaded for display.
func (s *Service) PendingItems(ctx context.Context) ([]*entities.ActionItem, error) {
	return s.actionRepo.FindPending(ctx)
}

// UpdateItem applies a partial update; fields left nil keep their
// stored value.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*entities.ActionItem, error) {
	item, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, err
	}

	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.AssigneeID != nil {
		if _, err := s.employeeRepo.FindByID(ctx, *input.AssigneeID); err != nil {
			if errors.Is(err, entities.ErrEmployeeNotFound) {
				return nil, usecaseErrors.ErrEmployeeNotFound
			}
			return nil, err
		}
		item.AssigneeID = input.AssigneeID
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			item.DueDate = nil
		} else {
			due, err := time.Parse(dueDateLayout, *input.DueDate)
			if err != nil {
				return nil, usecaseErrors.ErrInvalidInput
			}
			item.DueDate = &due
		}
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, usecaseErrors.ErrInvalidStatus
		}
		if s.strictPolicy && !item.Status.CanTransition(*input.Status) {
			return nil, usecaseErrors.ErrTransitionForbidden
		}
		item.Status = *input.Status
	}

	if err := s.actionRepo.Update(ctx, item); err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// UpdateStatus applies a status-only change. Repeating the current
// status is a no-op under either policy.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) (*entities.ActionItem, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidStatus
	}

	item, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, err
	}

	if item.Status == status {
		return item, nil
	}
	if s.strictPolicy && !item.Status.CanTransition(status) {
		return nil, usecaseErrors.ErrTransitionForbidden
	}

	if err := s.actionRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, err
	}
	item.Status = status
	return item, nil
}

// DeleteItem removes an action item
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.actionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return usecaseErrors.ErrActionItemNotFound
		}
		return err
	}
	return nil
}
