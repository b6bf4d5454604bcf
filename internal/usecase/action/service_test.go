package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

type fakeActionRepo struct {
	items map[uuid.UUID]*entities.ActionItem
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{items: make(map[uuid.UUID]*entities.ActionItem)}
}

func (r *fakeActionRepo) Create(ctx context.Context, item *entities.ActionItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, entities.ErrActionItemNotFound
}

func (r *fakeActionRepo) FindByMomPoint(ctx context.Context, momPointID uuid.UUID) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		if item.MomPointID == momPointID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeActionRepo) FindPending(ctx context.Context) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		if item.Status != entities.StatusCompleted {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeActionRepo) Update(ctx context.Context, item *entities.ActionItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return entities.ErrActionItemNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeActionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error {
	item, ok := r.items[id]
	if !ok {
		return entities.ErrActionItemNotFound
	}
	item.Status = status
	return nil
}

func (r *fakeActionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return entities.ErrActionItemNotFound
	}
	delete(r.items, id)
	return nil
}

type fakePointRepo struct {
	points map[uuid.UUID]*entities.MomPoint
}

func newFakePointRepo(points ...*entities.MomPoint) *fakePointRepo {
	r := &fakePointRepo{points: make(map[uuid.UUID]*entities.MomPoint)}
	for _, p := range points {
		r.points[p.ID] = p
	}
	return r
}

func (r *fakePointRepo) Create(ctx context.Context, p *entities.MomPoint) error { return nil }

func (r *fakePointRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.MomPoint, error) {
	if p, ok := r.points[id]; ok {
		return p, nil
	}
	return nil, entities.ErrMomPointNotFound
}

func (r *fakePointRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MomPoint, error) {
	return nil, nil
}
func (r *fakePointRepo) FindByAssignee(ctx context.Context, employeeID uuid.UUID) ([]*entities.MomPoint, error) {
	return nil, nil
}
func (r *fakePointRepo) Update(ctx context.Context, p *entities.MomPoint) error { return nil }
func (r *fakePointRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error {
	return nil
}
func (r *fakePointRepo) Delete(ctx context.Context, id uuid.UUID) error  { return nil }
func (r *fakePointRepo) CountPending(ctx context.Context) (int64, error) { return 0, nil }

type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*entities.Employee
}

func newFakeEmployeeRepo(employees ...*entities.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[uuid.UUID]*entities.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *entities.Employee) error { return nil }

func (r *fakeEmployeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	return nil, entities.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Employee, error) {
	return nil, entities.ErrEmployeeNotFound
}
func (r *fakeEmployeeRepo) List(ctx context.Context) ([]*entities.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*entities.Employee, error) {
	return nil, nil
}

func fixture(strict bool) (*Service, *fakeActionRepo, *entities.MomPoint, *entities.Employee) {
	point := &entities.MomPoint{ID: uuid.New(), Topic: "Budget review"}
	employee := &entities.Employee{ID: uuid.New(), Name: "Priya Nair"}

	actionRepo := newFakeActionRepo()
	svc := NewService(actionRepo, newFakePointRepo(point), newFakeEmployeeRepo(employee), strict)
	return svc, actionRepo, point, employee
}

func TestCreateItem(t *testing.T) {
	svc, _, point, employee := fixture(false)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		MomPointID:  point.ID,
		Description: "  Prepare cost breakdown  ",
		AssigneeID:  &employee.ID,
		DueDate:     "2026-09-15",
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if item.Description != "Prepare cost breakdown" {
		t.Fatalf("expected trimmed description, got %q", item.Description)
	}
	if item.Status != entities.StatusAssigned {
		t.Fatalf("expected status Assigned, got %q", item.Status)
	}
	if item.DueDate == nil || !item.DueDate.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", item.DueDate)
	}
}

func TestCreateItemEmptyDescription(t *testing.T) {
	svc, _, point, _ := fixture(false)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		MomPointID:  point.ID,
		Description: "   ",
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateItemUnknownPoint(t *testing.T) {
	svc, _, _, _ := fixture(false)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		MomPointID:  uuid.New(),
		Description: "Orphan task",
	})
	if !errors.Is(err, usecaseErrors.ErrMomPointNotFound) {
		t.Fatalf("expected ErrMomPointNotFound, got %v", err)
	}
}

func TestCreateItemUnknownAssignee(t *testing.T) {
	svc, _, point, _ := fixture(false)

	ghost := uuid.New()
	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		MomPointID:  point.ID,
		Description: "Task for nobody",
		AssigneeID:  &ghost,
	})
	if !errors.Is(err, usecaseErrors.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateItemPartial(t *testing.T) {
	svc, actionRepo, point, employee := fixture(false)

	due := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	existing := &entities.ActionItem{
		ID:          uuid.New(),
		MomPointID:  point.ID,
		Description: "Draft proposal",
		AssigneeID:  &employee.ID,
		DueDate:     &due,
		Status:      entities.StatusAssigned,
	}
	actionRepo.items[existing.ID] = existing

	status := entities.StatusInProgress
	item, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if item.Status != entities.StatusInProgress {
		t.Fatalf("expected status In Progress, got %q", item.Status)
	}
	if item.Description != "Draft proposal" {
		t.Fatalf("description should be untouched, got %q", item.Description)
	}
	if item.AssigneeID == nil || *item.AssigneeID != employee.ID {
		t.Fatalf("assignee should be untouched, got %v", item.AssigneeID)
	}
	if item.DueDate == nil || !item.DueDate.Equal(due) {
		t.Fatalf("due date should be untouched, got %v", item.DueDate)
	}
}

func TestUpdateItemClearDueDate(t *testing.T) {
	svc, actionRepo, point, _ := fixture(false)

	due := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	existing := &entities.ActionItem{
		ID:          uuid.New(),
		MomPointID:  point.ID,
		Description: "Draft proposal",
		DueDate:     &due,
		Status:      entities.StatusAssigned,
	}
	actionRepo.items[existing.ID] = existing

	empty := ""
	item, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{
		DueDate: &empty,
	})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if item.DueDate != nil {
		t.Fatalf("expected cleared due date, got %v", item.DueDate)
	}
}

func TestUpdateItemStrictPolicy(t *testing.T) {
	svc, actionRepo, point, _ := fixture(true)

	existing := &entities.ActionItem{
		ID:          uuid.New(),
		MomPointID:  point.ID,
		Description: "Draft proposal",
		Status:      entities.StatusAssigned,
	}
	actionRepo.items[existing.ID] = existing

	completed := entities.StatusCompleted
	_, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{
		Status: &completed,
	})
	if !errors.Is(err, usecaseErrors.ErrTransitionForbidden) {
		t.Fatalf("expected ErrTransitionForbidden, got %v", err)
	}

	inProgress := entities.StatusInProgress
	if _, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{Status: &inProgress}); err != nil {
		t.Fatalf("Assigned to In Progress should be allowed: %v", err)
	}
	if _, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{Status: &completed}); err != nil {
		t.Fatalf("In Progress to Completed should be allowed: %v", err)
	}
}

func TestUpdateItemInvalidStatus(t *testing.T) {
	svc, actionRepo, point, _ := fixture(false)

	existing := &entities.ActionItem{
		ID:          uuid.New(),
		MomPointID:  point.ID,
		Description: "Draft proposal",
		Status:      entities.StatusAssigned,
	}
	actionRepo.items[existing.ID] = existing

	bogus := entities.TaskStatus("Paused")
	_, err := svc.UpdateItem(context.Background(), existing.ID, UpdateItemInput{Status: &bogus})
	if !errors.Is(err, usecaseErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, actionRepo, point, _ := fixture(true)

	existing := &entities.ActionItem{
		ID:          uuid.New(),
		MomPointID:  point.ID,
		Description: "Draft proposal",
		Status:      entities.StatusAssigned,
	}
	actionRepo.items[existing.ID] = existing

	item, err := svc.UpdateStatus(context.Background(), existing.ID, entities.StatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if item.Status != entities.StatusInProgress {
		t.Fatalf("expected status In Progress, got %q", item.Status)
	}

	// repeating the current status is a no-op even under strict policy
	if _, err := svc.UpdateStatus(context.Background(), existing.ID, entities.StatusInProgress); err != nil {
		t.Fatalf("repeated status should be a no-op: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), existing.ID, entities.StatusAssigned); !errors.Is(err, usecaseErrors.ErrTransitionForbidden) {
		t.Fatalf("expected ErrTransitionForbidden, got %v", err)
	}
}

func TestUpdateStatusUnknownItem(t *testing.T) {
	svc, _, _, _ := fixture(false)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), entities.StatusCompleted)
	if !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("expected ErrActionItemNotFound, got %v", err)
	}
}

func TestItemsByMomPointUnknownPoint(t *testing.T) {
	svc, _, _, _ := fixture(false)

	_, err := svc.ItemsByMomPoint(context.Background(), uuid.New())
	if !errors.Is(err, usecaseErrors.ErrMomPointNotFound) {
		t.Fatalf("expected ErrMomPointNotFound, got %v", err)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc, _, _, _ := fixture(false)

	err := svc.DeleteItem(context.Background(), uuid.New())
	if !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("expected ErrActionItemNotFound, got %v", err)
	}
}
