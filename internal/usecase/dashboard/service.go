package dashboard

import (
	"context"
	"time"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
)

// Summary aggregates the headline counters shown on the dashboard
type Summary struct {
	TotalMeetings  int64 `json:"total_meetings"`
	PendingPoints  int64 `json:"pending_points"`
	PendingActions int64 `json:"pending_actions"`
}

// Service handles dashboard aggregation
type Service struct {
	meetingRepo repositories.MeetingRepository
	pointRepo   repositories.MomPointRepository
	actionRepo  repositories.ActionItemRepository
}

// NewService creates a new dashboard service
func NewService(
	meetingRepo repositories.MeetingRepository,
	pointRepo repositories.MomPointRepository,
	actionRepo repositories.ActionItemRepository,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		pointRepo:   pointRepo,
		actionRepo:  actionRepo,
	}
}

// GetSummary returns the headline counters. All counters are zero on
// an empty database.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	totalMeetings, err := s.meetingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingPoints, err := s.pointRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	pendingItems, err := s.actionRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalMeetings:  totalMeetings,
		PendingPoints:  pendingPoints,
		PendingActions: int64(len(pendingItems)),
	}, nil
}

// TodaysMeetings returns the meetings scheduled within the current
// local day.
func (s *Service) TodaysMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	return s.meetingRepo.FindByDay(ctx, dayStart, dayEnd)
}

// PendingActions returns every action item not yet completed, with the
// parent point and meeting loaded for display.
func (s *Service) PendingActions(ctx context.Context) ([]*entities.ActionItem, error) {
	return s.actionRepo.FindPending(ctx)
}
