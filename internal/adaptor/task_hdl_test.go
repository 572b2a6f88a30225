package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ritesh23s/task-manager/internal/dto/request"
	"github.com/ritesh23s/task-manager/internal/dto/response"
	"github.com/ritesh23s/task-manager/internal/usecase"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTaskService struct {
	listResp  *response.TaskListResponse
	taskResp  *response.TaskResponse
	usersResp []response.UserWithTasksResponse
	analytics *response.AnalyticsResponse
	err       error
}

func (s *stubTaskService) List(context.Context, uuid.UUID, *request.TaskListFilter) (*response.TaskListResponse, error) {
	return s.listResp, s.err
}

func (s *stubTaskService) Get(context.Context, uuid.UUID, string) (*response.TaskResponse, error) {
	return s.taskResp, s.err
}

func (s *stubTaskService) Create(context.Context, uuid.UUID, *request.CreateTaskRequest) (*response.TaskResponse, error) {
	return s.taskResp, s.err
}

func (s *stubTaskService) UpdateStatus(context.Context, uuid.UUID, string, string) (*response.TaskResponse, error) {
	return s.taskResp, s.err
}

func (s *stubTaskService) Delete(context.Context, uuid.UUID, string) error {
	return s.err
}

func (s *stubTaskService) AdminListUsersWithTasks(context.Context) ([]response.UserWithTasksResponse, error) {
	return s.usersResp, s.err
}

func (s *stubTaskService) AdminUpdateStatus(context.Context, string, string) (*response.TaskResponse, error) {
	return s.taskResp, s.err
}

func (s *stubTaskService) AdminDelete(context.Context, string) error {
	return s.err
}

func (s *stubTaskService) Analytics(context.Context) (*response.AnalyticsResponse, error) {
	return s.analytics, s.err
}

// authedRequest builds a request carrying an authenticated caller the
// way the auth middleware would.
func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := utils.SetUserContext(req.Context(), userID, "user")
	return req.WithContext(ctx)
}

func taskRouter(h *TaskHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestTaskHandler_ListRequiresAuth(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{}, zap.NewNop())
	router := taskRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTaskHandler_List(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		listResp: &response.TaskListResponse{
			Tasks:      []response.TaskResponse{{ID: uuid.NewString(), Title: "one"}},
			Page:       1,
			TotalPages: 1,
			Total:      1,
		},
	}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/?status=pending&page=1", "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, data["totalPages"])
}

func TestTaskHandler_ListBadPriority(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/?priority=Urgent", "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_Create(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		taskResp: &response.TaskResponse{ID: uuid.NewString(), Title: "new task", Status: "pending"},
	}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodPost, "/api/tasks/",
		`{"title":"new task","priority":"High"}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{}, zap.NewNop())
	router := taskRouter(h)

	// priority outside the allowed set
	req := authedRequest(http.MethodPost, "/api/tasks/",
		`{"title":"new task","priority":"Critical"}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_GetForbidden(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{err: usecase.ErrForbidden}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/"+uuid.NewString(), "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, "Access denied", envelope.Message)
}

func TestTaskHandler_GetNotFound(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{err: usecase.ErrTaskNotFound}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/"+uuid.NewString(), "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_GetBadID(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		err: fmt.Errorf("invalid task ID %q: %w", "not-a-uuid", usecase.ErrInvalidID),
	}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/not-a-uuid", "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_DriverErrorStaysInternal(t *testing.T) {
	// an unanticipated error whose text happens to contain "invalid"
	// must not leak as a 400
	h := NewTaskHandler(&stubTaskService{
		err: fmt.Errorf("find task: %w", errors.New("conn closed: invalid connection")),
	}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodGet, "/api/tasks/"+uuid.NewString(), "", uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, "Internal server error", envelope.Message)
	require.NotContains(t, envelope.Message, "conn closed")
}

func TestTaskHandler_UpdateStatus(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		taskResp: &response.TaskResponse{ID: uuid.NewString(), Status: "completed"},
	}, zap.NewNop())
	router := taskRouter(h)

	req := authedRequest(http.MethodPut, "/api/tasks/"+uuid.NewString(),
		`{"status":"completed"}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandler_Analytics(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		analytics: &response.AnalyticsResponse{
			Users: response.UserAnalytics{Total: 2, Active: 1, Disabled: 1},
			Tasks: response.TaskAnalytics{Total: 3, Completed: 1, Pending: 2},
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/admin/analytics", nil)
	rec := httptest.NewRecorder()
	h.Analytics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	users, ok := data["users"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 2, users["total"])
}
