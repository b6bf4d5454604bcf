package notify

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
)

// Sender delivers a single message to a recipient list. Implemented by
// the SMTP transport in internal/infrastructure/mail.
type Sender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// Dispatcher resolves recipient sets and sends notifications. Every
// method is best-effort: failures are logged and never returned, so a
// triggering write is never rolled back by a mail problem.
type Dispatcher struct {
	employeeRepo repositories.EmployeeRepository
	sender       Sender
	logger       *zap.Logger
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(employeeRepo repositories.EmployeeRepository, sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		employeeRepo: employeeRepo,
		sender:       sender,
		logger:       logger,
	}
}

// MeetingScheduled notifies a department that a meeting was created:
// every active member plus their superior and head of department.
func (d *Dispatcher) MeetingScheduled(ctx context.Context, meeting *entities.Meeting) {
	if meeting.DepartmentID == nil {
		return
	}

	employees, err := d.employeeRepo.FindByDepartment(ctx, *meeting.DepartmentID)
	if err != nil {
		d.logger.Error("notify.meeting_scheduled.resolve_failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return
	}

	recipients := collectRecipients(employees)
	if len(recipients) == 0 {
		// Nobody to tell is not an error.
		return
	}

	subject := fmt.Sprintf("Meeting scheduled: %s", meeting.Title)
	body := meetingScheduledBody(meeting)

	if err := d.sender.Send(ctx, recipients, subject, body); err != nil {
		d.logger.Error("notify.meeting_scheduled.send_failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("recipients", len(recipients)),
			zap.Error(err),
		)
		return
	}

	d.logger.Info("notify.meeting_scheduled.sent",
		zap.String("meeting_id", meeting.ID.String()),
		zap.Int("recipients", len(recipients)),
	)
}

// PointAssigned notifies the assignees of a new MOM point, together
// with their superiors and heads of department.
func (d *Dispatcher) PointAssigned(ctx context.Context, point *entities.MomPoint) {
	ids := point.AssigneeIDs()
	if len(ids) == 0 {
		return
	}

	employees, err := d.employeeRepo.FindByIDs(ctx, ids)
	if err != nil {
		d.logger.Error("notify.point_assigned.resolve_failed",
			zap.String("mom_point_id", point.ID.String()),
			zap.Error(err),
		)
		return
	}

	recipients := collectRecipients(employees)
	if len(recipients) == 0 {
		return
	}

	subject := fmt.Sprintf("New action point: %s", point.Topic)
	body := pointAssignedBody(point)

	if err := d.sender.Send(ctx, recipients, subject, body); err != nil {
		d.logger.Error("notify.point_assigned.send_failed",
			zap.String("mom_point_id", point.ID.String()),
			zap.Int("recipients", len(recipients)),
			zap.Error(err),
		)
		return
	}

	d.logger.Info("notify.point_assigned.sent",
		zap.String("mom_point_id", point.ID.String()),
		zap.Int("recipients", len(recipients)),
	)
}

// collectRecipients expands employees into a deduplicated, sorted
// address list: each employee's own addresses plus the company address
// of their superior and head of department.
func collectRecipients(employees []*entities.Employee) []string {
	seen := make(map[string]struct{})
	seenIDs := make(map[uuid.UUID]struct{})

	add := func(addr string) {
		if addr == "" {
			return
		}
		seen[addr] = struct{}{}
	}

	for _, emp := range employees {
		if _, dup := seenIDs[emp.ID]; dup {
			continue
		}
		seenIDs[emp.ID] = struct{}{}

		for _, addr := range emp.Emails() {
			add(addr)
		}
		if emp.Superior != nil && emp.Superior.CompanyEmail != nil {
			add(*emp.Superior.CompanyEmail)
		}
		if emp.HOD != nil && emp.HOD.CompanyEmail != nil {
			add(*emp.HOD.CompanyEmail)
		}
	}

	out := make([]string, 0, len(seen))
	for addr := range seen {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}

func meetingScheduledBody(meeting *entities.Meeting) string {
	desc := ""
	if meeting.Description != nil {
		desc = *meeting.Description
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>%s</h2>
  <p><b>When:</b> %s</p>
  <p><b>Where:</b> %s (%s)</p>
  <p>%s</p>
</div>
`, meeting.Title, meeting.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"), meeting.Location(), meeting.Type, desc)
}

func pointAssignedBody(point *entities.MomPoint) string {
	due := "not set"
	if point.DueDate != nil {
		due = point.DueDate.Format("02 Jan 2006")
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>%s</h2>
  <p>%s</p>
  <p><b>Due:</b> %s</p>
  <p><b>Status:</b> %s</p>
</div>
`, point.Topic, point.Discussion, due, point.Status)
}
