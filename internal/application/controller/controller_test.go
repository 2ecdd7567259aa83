package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/application/middleware"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/pkg/hal"
)

var testUser = &entity.User{ID: 7, Username: "Ana", Email: "ana@example.com"}

type fakeTaskUseCase struct {
	tasks   map[uint]entity.Task
	created entity.Task
	deleted []uint
}

func (f *fakeTaskUseCase) Create(_ context.Context, userID uint, task entity.Task) (*entity.Task, error) {
	if task.EndDate != nil && task.EndDate.Before(task.StartDate) {
		return nil, fmt.Errorf("create: %w", entity.ErrInvalidTask)
	}
	task.ID = 99
	task.UserID = userID
	f.created = task
	return &task, nil
}

func (f *fakeTaskUseCase) Update(_ context.Context, userID uint, taskID uint, task entity.Task) (*entity.Task, error) {
	if _, ok := f.tasks[taskID]; !ok {
		return nil, entity.ErrTaskNotFound
	}
	task.ID = taskID
	task.UserID = userID
	return &task, nil
}

func (f *fakeTaskUseCase) GetAll(context.Context, uint) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0, len(f.tasks))
	for id := uint(1); id <= uint(len(f.tasks)); id++ {
		tasks = append(tasks, f.tasks[id])
	}
	return tasks, nil
}

func (f *fakeTaskUseCase) GetByID(_ context.Context, _ uint, taskID uint) (*entity.Task, error) {
	task, ok := f.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("find: %w", entity.ErrTaskNotFound)
	}
	return &task, nil
}

func (f *fakeTaskUseCase) Delete(_ context.Context, _ uint, taskID uint) error {
	if _, ok := f.tasks[taskID]; !ok {
		return entity.ErrTaskNotFound
	}
	f.deleted = append(f.deleted, taskID)
	return nil
}

func (f *fakeTaskUseCase) Validate(entity.Task) error { return nil }

type fakeChecklistUseCase struct {
	checklists map[uint]entity.Checklist
}

func (f *fakeChecklistUseCase) Create(_ context.Context, userID uint, checklist entity.Checklist) (*entity.Checklist, error) {
	if strings.TrimSpace(checklist.Name) == "" {
		return nil, entity.ErrInvalidChecklist
	}
	checklist.ID = 301
	checklist.UserID = userID
	return &checklist, nil
}

func (f *fakeChecklistUseCase) GetChecklists(context.Context, uint) ([]entity.Checklist, error) {
	return []entity.Checklist{}, nil
}

func (f *fakeChecklistUseCase) GetChecklist(_ context.Context, checklistID uint, _ uint) (*entity.Checklist, error) {
	checklist, ok := f.checklists[checklistID]
	if !ok {
		return nil, entity.ErrChecklistNotFound
	}
	return &checklist, nil
}

func (f *fakeChecklistUseCase) Update(_ context.Context, checklist entity.Checklist) (*entity.Checklist, error) {
	return &checklist, nil
}

func (f *fakeChecklistUseCase) Rename(ctx context.Context, userID uint, checklistID uint, name string) (*entity.Checklist, error) {
	checklist, err := f.GetChecklist(ctx, checklistID, userID)
	if err != nil {
		return nil, err
	}
	checklist.Name = name
	return checklist, nil
}

func (f *fakeChecklistUseCase) Delete(context.Context, uint, uint) error { return nil }

type fakeChecklistTaskUseCase struct {
	checklist entity.Checklist
	relations []entity.ChecklistTask
}

func (f *fakeChecklistTaskUseCase) AddTask(_ context.Context, relation entity.ChecklistTask) (*entity.Checklist, error) {
	if relation.ChecklistID != f.checklist.ID {
		return nil, entity.ErrChecklistNotFound
	}
	if relation.TaskID == 404 {
		return nil, entity.ErrTaskNotFound
	}
	checklist := f.checklist
	checklist.Tasks = append(checklist.Tasks, entity.Task{ID: relation.TaskID, Name: "Buy milk"})
	return &checklist, nil
}

func (f *fakeChecklistTaskUseCase) RemoveTask(_ context.Context, relation entity.ChecklistTask) (*entity.Checklist, error) {
	if relation.ChecklistID != f.checklist.ID {
		return nil, entity.ErrChecklistNotFound
	}
	checklist := f.checklist
	return &checklist, nil
}

func (f *fakeChecklistTaskUseCase) GetRelations(context.Context, uint) ([]entity.ChecklistTask, error) {
	return f.relations, nil
}

type fakeUserUseCase struct {
	deleted []string
}

func (f *fakeUserUseCase) GetUser(context.Context, model.UserClaims) (*entity.User, error) {
	return testUser, nil
}

func (f *fakeUserUseCase) Delete(_ context.Context, email string) error {
	f.deleted = append(f.deleted, email)
	return nil
}

type fakeHealthUseCase struct {
	status model.HealthStatus
}

func (f fakeHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return model.HealthResponse{Status: f.status}
}

type fixture struct {
	echo       *echo.Echo
	tasks      *fakeTaskUseCase
	checklists *fakeChecklistUseCase
	relations  *fakeChecklistTaskUseCase
	users      *fakeUserUseCase
}

func newFixture(authenticated bool) *fixture {
	end := time.Date(2030, 1, 5, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		echo: echo.New(),
		tasks: &fakeTaskUseCase{tasks: map[uint]entity.Task{
			1: {ID: 1, Name: "Buy milk", StartDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end, UserID: 7},
			2: {ID: 2, Name: "Walk the dog", StartDate: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), UserID: 7},
		}},
		checklists: &fakeChecklistUseCase{checklists: map[uint]entity.Checklist{
			301: {ID: 301, Name: "Weekend", UserID: 7, Tasks: []entity.Task{{ID: 1, Name: "Buy milk"}}},
		}},
		relations: &fakeChecklistTaskUseCase{
			checklist: entity.Checklist{ID: 301, Name: "Weekend", UserID: 7},
			relations: []entity.ChecklistTask{{ChecklistID: 301, TaskID: 1, UserID: 7}},
		},
		users: &fakeUserUseCase{},
	}

	if authenticated {
		f.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(middleware.UserContextKey, testUser)
				return next(c)
			}
		})
	}

	api := f.echo.Group("")
	NewIndexController(api).InitIndexRoutes()
	NewHealthController(api, fakeHealthUseCase{status: model.StatusUp}).InitHealthRoutes()
	NewTaskController(api, f.tasks).InitTaskRoutes()
	NewChecklistTaskController(api, f.relations).InitChecklistTaskRoutes()
	NewChecklistController(api, f.checklists).InitChecklistRoutes()
	NewUserController(api, f.users).InitUserRoutes()
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(rec.Body.Bytes(), &value); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
	return value
}

func assertHAL(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != hal.MediaType {
		t.Errorf("expected content type %s, got %s", hal.MediaType, got)
	}
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if got := decode[model.ErrorResponseDto](t, rec).Error; got != message {
		t.Errorf("expected error %q, got %q", message, got)
	}
}

func TestIndex(t *testing.T) {
	rec := newFixture(false).do(http.MethodGet, "/", "")

	assertHAL(t, rec, http.StatusOK)
	index := decode[model.IndexDto](t, rec)
	for rel, href := range map[string]string{
		"tasks":      "http://example.com/tasks",
		"checklists": "http://example.com/checklists",
		"relations":  "http://example.com/checklists/tasks",
		"user":       "http://example.com/user",
	} {
		if index.Links[rel].Href != href {
			t.Errorf("expected %s link %s, got %s", rel, href, index.Links[rel].Href)
		}
	}
}

func TestGetTasks(t *testing.T) {
	rec := newFixture(true).do(http.MethodGet, "/tasks", "")

	assertHAL(t, rec, http.StatusOK)
	collection := decode[model.TaskCollectionDto](t, rec)
	if len(collection.Embedded.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(collection.Embedded.Tasks))
	}
	first := collection.Embedded.Tasks[0]
	if first.Links["self"].Href != "http://example.com/tasks/1" || first.StartDate.Format(model.DateLayout) != "2030-01-01" {
		t.Errorf("unexpected task %+v", first)
	}
	if first.EndDate == nil || first.EndDate.Format(model.DateLayout) != "2030-01-05" {
		t.Errorf("unexpected end date %v", first.EndDate)
	}
	if !strings.Contains(rec.Body.String(), `"startDate":"2030-01-01"`) {
		t.Errorf("expected ISO dates in %s", rec.Body.String())
	}
	if collection.Links["self"].Href != "http://example.com/tasks" {
		t.Errorf("unexpected self link %s", collection.Links["self"].Href)
	}
}

func TestGetTasksRequiresUser(t *testing.T) {
	rec := newFixture(false).do(http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestGetTask(t *testing.T) {
	f := newFixture(true)

	assertHAL(t, f.do(http.MethodGet, "/tasks/2", ""), http.StatusOK)
	assertError(t, f.do(http.MethodGet, "/tasks/42", ""), http.StatusNotFound, "Task 42 not found")
	assertError(t, f.do(http.MethodGet, "/tasks/abc", ""), http.StatusBadRequest, "Invalid id: abc")
	assertError(t, f.do(http.MethodGet, "/tasks/-1", ""), http.StatusBadRequest, "Invalid id: -1")
}

func TestCreateTask(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodPost, "/tasks", `{"name":"Pay rent","description":"Before the 5th","startDate":"2030-02-01","endDate":"2030-02-05"}`)

	assertHAL(t, rec, http.StatusCreated)
	if got := rec.Header().Get(echo.HeaderLocation); got != "http://example.com/tasks/99" {
		t.Errorf("unexpected location %s", got)
	}
	if f.tasks.created.UserID != testUser.ID || f.tasks.created.Name != "Pay rent" {
		t.Errorf("unexpected created task %+v", f.tasks.created)
	}
	if f.tasks.created.EndDate == nil || !f.tasks.created.EndDate.Equal(time.Date(2030, 2, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end date %v", f.tasks.created.EndDate)
	}
}

func TestCreateTaskRejectsInvalidInput(t *testing.T) {
	f := newFixture(true)

	assertError(t, f.do(http.MethodPost, "/tasks", `{"name":"x","startDate":"2030-02-05","endDate":"2030-02-01"}`),
		http.StatusBadRequest, "Invalid task: the end date must not precede the start date and the start date must not precede today")
	assertError(t, f.do(http.MethodPost, "/tasks", `{"name":"x","startDate":"05/02/2030"}`), http.StatusBadRequest, "Invalid request body")
	assertError(t, f.do(http.MethodPost, "/tasks", `{`), http.StatusBadRequest, "Invalid request body")
}

func TestUpdateTask(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodPut, "/tasks/1", `{"name":"Buy oat milk","startDate":"2030-01-01"}`)
	assertHAL(t, rec, http.StatusOK)
	if got := decode[model.TaskResponseDto](t, rec); got.Name != "Buy oat milk" || got.EndDate != nil {
		t.Errorf("unexpected task %+v", got)
	}

	assertError(t, f.do(http.MethodPut, "/tasks/8", `{"name":"x"}`), http.StatusNotFound, "Task 8 not found")
}

func TestDeleteTask(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodDelete, "/tasks/1", "")
	if rec.Code != http.StatusNoContent || len(f.tasks.deleted) != 1 {
		t.Errorf("expected 204 and one deletion, got %d and %v", rec.Code, f.tasks.deleted)
	}
	assertError(t, f.do(http.MethodDelete, "/tasks/5", ""), http.StatusNotFound, "Task 5 not found")
}

func TestChecklists(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodGet, "/checklists", "")
	assertHAL(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"checklists":[]`) {
		t.Errorf("expected an empty embedded array, got %s", rec.Body.String())
	}

	rec = f.do(http.MethodGet, "/checklists/301", "")
	assertHAL(t, rec, http.StatusOK)
	checklist := decode[model.ChecklistResponseDto](t, rec)
	if len(checklist.Tasks) != 1 || checklist.Tasks[0].Links["removeTask"].Href != "http://example.com/checklists/301/tasks/1" {
		t.Errorf("unexpected checklist %+v", checklist)
	}

	assertError(t, f.do(http.MethodGet, "/checklists/5", ""), http.StatusNotFound, "Checklist 5 not found")
}

func TestCreateAndRenameChecklist(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodPost, "/checklists", `{"name":"Groceries"}`)
	assertHAL(t, rec, http.StatusCreated)
	if got := rec.Header().Get(echo.HeaderLocation); got != "http://example.com/checklists/301" {
		t.Errorf("unexpected location %s", got)
	}
	assertError(t, f.do(http.MethodPost, "/checklists", `{"name":"  "}`), http.StatusBadRequest, "Invalid checklist: a name is required")

	rec = f.do(http.MethodPut, "/checklists/301", `{"name":"Long weekend"}`)
	assertHAL(t, rec, http.StatusOK)
	if got := decode[model.ChecklistResponseDto](t, rec).Name; got != "Long weekend" {
		t.Errorf("unexpected name %s", got)
	}

	if rec := f.do(http.MethodDelete, "/checklists/301", ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestRelations(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodGet, "/checklists/tasks", "")
	assertHAL(t, rec, http.StatusOK)
	relations := decode[model.ChecklistTaskCollectionDto](t, rec)
	if len(relations.Embedded.Relations) != 1 || relations.Embedded.Relations[0].Links["task"].Href != "http://example.com/tasks/1" {
		t.Errorf("unexpected relations %+v", relations)
	}

	rec = f.do(http.MethodPut, "/checklists/tasks", `{"checklistId":301,"taskId":2}`)
	assertHAL(t, rec, http.StatusOK)
	if got := decode[model.ChecklistResponseDto](t, rec); len(got.Tasks) != 1 || got.Tasks[0].ID != 2 {
		t.Errorf("unexpected checklist %+v", got)
	}

	assertError(t, f.do(http.MethodPut, "/checklists/tasks", `{"checklistId":301,"taskId":404}`), http.StatusNotFound, "Task 404 not found")
	assertError(t, f.do(http.MethodPut, "/checklists/tasks", `{"checklistId":9,"taskId":1}`), http.StatusNotFound, "Checklist 9 not found")

	assertHAL(t, f.do(http.MethodDelete, "/checklists/301/tasks/1", ""), http.StatusOK)
	assertError(t, f.do(http.MethodDelete, "/checklists/301/tasks/x", ""), http.StatusBadRequest, "Invalid id: x")
}

func TestUser(t *testing.T) {
	f := newFixture(true)

	rec := f.do(http.MethodGet, "/user", "")
	assertHAL(t, rec, http.StatusOK)
	if got := decode[model.UserResponseDto](t, rec); got.Email != testUser.Email || got.Links["self"].Href != "http://example.com/user" {
		t.Errorf("unexpected user %+v", got)
	}

	rec = f.do(http.MethodDelete, "/user", "")
	if rec.Code != http.StatusNoContent || len(f.users.deleted) != 1 || f.users.deleted[0] != testUser.Email {
		t.Errorf("expected the user to be deleted, got %d and %v", rec.Code, f.users.deleted)
	}
}

func TestHealth(t *testing.T) {
	for _, tt := range []struct {
		status model.HealthStatus
		code   int
	}{
		{status: model.StatusUp, code: http.StatusOK},
		{status: model.StatusDown, code: http.StatusServiceUnavailable},
	} {
		e := echo.New()
		NewHealthController(e.Group(""), fakeHealthUseCase{status: tt.status}).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != tt.code {
			t.Errorf("expected %d for %s, got %d", tt.code, tt.status, rec.Code)
		}
	}
}
