package mom

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/notify"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

const dueDateLayout = "2006-01-02"

// Service handles MOM point business logic
type Service struct {
	pointRepo    repositories.MomPointRepository
	meetingRepo  repositories.MeetingRepository
	employeeRepo repositories.EmployeeRepository
	dispatcher   *notify.Dispatcher
	strictPolicy bool
}

// NewService creates a new MOM point service. strictPolicy enables the
// Assigned -> In Progress -> Completed status ladder; otherwise any
// valid status may be set at any time.
func NewService(
	pointRepo repositories.MomPointRepository,
	meetingRepo repositories.MeetingRepository,
	employeeRepo repositories.EmployeeRepository,
	dispatcher *notify.Dispatcher,
	strictPolicy bool,
) *Service {
	return &Service{
		pointRepo:    pointRepo,
		meetingRepo:  meetingRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
		strictPolicy: strictPolicy,
	}
}

// CreatePointInput contains the data needed to record a MOM point
type CreatePointInput struct {
	MeetingID   uuid.UUID
	Topic       string
	Discussion  string
	Decision    *string
	DueDate     string // optional, "2006-01-02"
	AssigneeIDs []uuid.UUID
	Status      entities.TaskStatus // optional, defaults to Assigned
}

// UpdatePointInput contains the fields of a full MOM point update.
// Nil pointers leave the current value untouched; a non-nil AssigneeIDs
// replaces the whole assignee set.
type UpdatePointInput struct {
	Topic       *string
	Discussion  *string
	Decision    *string
	DueDate     *string
	AssigneeIDs []uuid.UUID
	Status      *entities.TaskStatus
}

// CreatePoint records a discussion point against an existing meeting
// and notifies its assignees.
func (s *Service) CreatePoint(ctx context.Context, input CreatePointInput) (*entities.MomPoint, error) {
	if strings.TrimSpace(input.Topic) == "" || strings.TrimSpace(input.Discussion) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.meetingRepo.FindByID(ctx, input.MeetingID); err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, err
	}

	assignees, err := s.resolveAssignees(ctx, input.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.StatusAssigned
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidStatus
	}

	point := &entities.MomPoint{
		MeetingID:  input.MeetingID,
		Topic:      strings.TrimSpace(input.Topic),
		Discussion: input.Discussion,
		Decision:   input.Decision,
		Status:     status,
		Assignees:  assignees,
	}

	if input.DueDate != "" {
		due, err := time.Parse(dueDateLayout, input.DueDate)
		if err != nil {
			return nil, usecaseErrors.ErrInvalidInput
		}
		point.DueDate = &due
	}

	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}

	s.dispatcher.PointAssigned(ctx, point)

	return point, nil
}

// GetPoint retrieves a single MOM point with its assignees
func (s *Service) GetPoint(ctx context.Context, id uuid.UUID) (*entities.MomPoint, error) {
	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}
	return point, nil
}

// PointsByMeeting retrieves every MOM point recorded for a meeting
func (s *Service) PointsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MomPoint, error) {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, err
	}
	return s.pointRepo.FindByMeeting(ctx, meetingID)
}

// MyTasks retrieves the MOM points assigned to the employee linked to
// the authenticated user. A user without an employee record has no
// tasks rather than an error.
func (s *Service) MyTasks(ctx context.Context, userID uuid.UUID) ([]*entities.MomPoint, error) {
	employee, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrEmployeeNotFound) {
			return []*entities.MomPoint{}, nil
		}
		return nil, err
	}
	return s.pointRepo.FindByAssignee(ctx, employee.ID)
}

// UpdatePoint applies a full editor-level update, replacing the
// assignee set when one is supplied.
func (s *Service) UpdatePoint(ctx context.Context, id uuid.UUID, input UpdatePointInput) (*entities.MomPoint, error) {
	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}

	if input.Topic != nil {
		if strings.TrimSpace(*input.Topic) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		point.Topic = strings.TrimSpace(*input.Topic)
	}
	if input.Discussion != nil {
		point.Discussion = *input.Discussion
	}
	if input.Decision != nil {
		if *input.Decision == "" {
			point.Decision = nil
		} else {
			point.Decision = input.Decision
		}
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			point.DueDate = nil
		} else {
			due, err := time.Parse(dueDateLayout, *input.DueDate)
			if err != nil {
				return nil, usecaseErrors.ErrInvalidInput
			}
			point.DueDate = &due
		}
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, usecaseErrors.ErrInvalidStatus
		}
		if err := s.checkTransition(point.Status, *input.Status); err != nil {
			return nil, err
		}
		point.Status = *input.Status
	}

	assigneesChanged := false
	if input.AssigneeIDs != nil {
		assignees, err := s.resolveAssignees(ctx, input.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		point.Assignees = assignees
		assigneesChanged = true
	}

	if err := s.pointRepo.Update(ctx, point); err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}

	if assigneesChanged {
		s.dispatcher.PointAssigned(ctx, point)
	}

	return point, nil
}

// UpdateStatus moves a MOM point to a new status on behalf of the
// authenticated user, who must be one of the point's assignees.
// Repeating the current status is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status entities.TaskStatus) (*entities.MomPoint, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidStatus
	}

	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}

	employee, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrEmployeeNotFound) {
			return nil, usecaseErrors.ErrNotAssignee
		}
		return nil, err
	}
	if !point.HasAssignee(employee.ID) {
		return nil, usecaseErrors.ErrNotAssignee
	}

	if point.Status == status {
		return point, nil
	}
	if err := s.checkTransition(point.Status, status); err != nil {
		return nil, err
	}

	if err := s.pointRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return nil, usecaseErrors.ErrMomPointNotFound
		}
		return nil, err
	}

	point.Status = status
	return point, nil
}

// DeletePoint removes a MOM point and its assignee relations
func (s *Service) DeletePoint(ctx context.Context, id uuid.UUID) error {
	if err := s.pointRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrMomPointNotFound) {
			return usecaseErrors.ErrMomPointNotFound
		}
		return err
	}
	return nil
}

// resolveAssignees loads and validates the assignee set. Duplicate IDs
// collapse, an empty set is rejected, and an unknown ID fails the whole
// request.
func (s *Service) resolveAssignees(ctx context.Context, ids []uuid.UUID) ([]*entities.Employee, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, usecaseErrors.ErrNoAssignees
	}

	assignees, err := s.employeeRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(assignees) != len(unique) {
		return nil, usecaseErrors.ErrEmployeeNotFound
	}
	return assignees, nil
}

func (s *Service) checkTransition(from, to entities.TaskStatus) error {
	if !s.strictPolicy {
		return nil
	}
	if !from.CanTransition(to) {
		return usecaseErrors.ErrTransitionForbidden
	}
	return nil
}
