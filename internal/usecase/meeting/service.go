package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/notify"
)

// scheduleLayout combines the date and time fields the client submits.
const scheduleLayout = "2006-01-02 15:04"

// Service handles meeting business logic
type Service struct {
	meetingRepo repositories.MeetingRepository
	dispatcher  *notify.Dispatcher
}

// NewService creates a new meeting service
func NewService(meetingRepo repositories.MeetingRepository, dispatcher *notify.Dispatcher) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		dispatcher:  dispatcher,
	}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title        string
	Description  *string
	Date         string // "2006-01-02"
	Time         string // "15:04"
	Type         string
	Platform     string
	Venue        string
	DepartmentID *uuid.UUID
	CreatedBy    uuid.UUID
	Metadata     map[string]interface{}
}

// CreateMeeting validates and persists a new meeting, then notifies
// the department. Notification is best-effort and does not affect the
// result.
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	meetingType := entities.MeetingType(input.Type)
	if !meetingType.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}

	scheduledAt, err := time.Parse(scheduleLayout, input.Date+" "+input.Time)
	if err != nil {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meeting := &entities.Meeting{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		ScheduledAt:  scheduledAt,
		Type:         meetingType,
		DepartmentID: input.DepartmentID,
		CreatedBy:    input.CreatedBy,
	}

	// The type determines which location attribute is mandatory; the
	// other one stays NULL.
	switch meetingType {
	case entities.MeetingTypeOnline:
		platform := strings.TrimSpace(input.Platform)
		if platform == "" {
			return nil, usecaseErrors.ErrPlatformRequired
		}
		meeting.Platform = &platform
	case entities.MeetingTypeOffline:
		venue := strings.TrimSpace(input.Venue)
		if venue == "" {
			return nil, usecaseErrors.ErrVenueRequired
		}
		meeting.Venue = &venue
	}

	if len(input.Metadata) > 0 {
		if raw, err := json.Marshal(input.Metadata); err == nil {
			meeting.Metadata = datatypes.JSON(raw)
		}
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.dispatcher.MeetingScheduled(ctx, meeting)

	return meeting, nil
}

// ListMeetings retrieves all meetings, newest first
func (s *Service) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// GetMeeting retrieves a meeting by ID
func (s *Service) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// UpdateMeetingInput represents input for updating a meeting. A nil
// Metadata map keeps the stored metadata.
type UpdateMeetingInput struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	Date         string
	Time         string
	Type         string
	Platform     string
	Venue        string
	DepartmentID *uuid.UUID
	Metadata     map[string]interface{}
}

// UpdateMeeting replaces a meeting's fields
func (s *Service) UpdateMeeting(ctx context.Context, input UpdateMeetingInput) (*entities.Meeting, error) {
	meetingType := entities.MeetingType(input.Type)
	if !meetingType.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}

	scheduledAt, err := time.Parse(scheduleLayout, input.Date+" "+input.Time)
	if err != nil {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meeting := &entities.Meeting{
		ID:           input.ID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		ScheduledAt:  scheduledAt,
		Type:         meetingType,
		DepartmentID: input.DepartmentID,
	}

	switch meetingType {
	case entities.MeetingTypeOnline:
		platform := strings.TrimSpace(input.Platform)
		if platform == "" {
			return nil, usecaseErrors.ErrPlatformRequired
		}
		meeting.Platform = &platform
	case entities.MeetingTypeOffline:
		venue := strings.TrimSpace(input.Venue)
		if venue == "" {
			return nil, usecaseErrors.ErrVenueRequired
		}
		meeting.Venue = &venue
	}
	meeting.NormalizeLocation()

	if len(input.Metadata) > 0 {
		if raw, err := json.Marshal(input.Metadata); err == nil {
			meeting.Metadata = datatypes.JSON(raw)
		}
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	return s.GetMeeting(ctx, input.ID)
}

// DeleteMeeting deletes a meeting by ID
func (s *Service) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
