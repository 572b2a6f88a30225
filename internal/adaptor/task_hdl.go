package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/ritesh23s/task-manager/internal/dto/request"
	"github.com/ritesh23s/task-manager/internal/usecase"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TaskHandler struct {
	service usecase.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	filter := &request.TaskListFilter{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
		Page:     utils.ParseInt(query.Get("page"), 1),
	}

	if validationErrors := utils.ValidateStruct(filter); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list tasks")
		return
	}

	utils.ResponseSuccess(w, "Tasks retrieved successfully", resp)
}

// Get handles GET /api/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get task")
		return
	}

	utils.ResponseSuccess(w, "Task retrieved successfully", resp)
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create task")
		return
	}

	utils.ResponseCreated(w, "Task created successfully", resp)
}

// UpdateStatus handles PUT /api/tasks/{id}
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), userID, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update task")
		return
	}

	utils.ResponseSuccess(w, "Task updated successfully", resp)
}

// Delete handles DELETE /api/tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete task")
		return
	}

	utils.ResponseSuccess(w, "Task deleted", nil)
}

// AdminListUsers handles GET /api/tasks/admin/users (admin only)
func (h *TaskHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.AdminListUsersWithTasks(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users with tasks")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", resp)
}

// AdminUpdateStatus handles PUT /api/tasks/admin/task/{id} (admin only)
func (h *TaskHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.AdminUpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update task")
		return
	}

	utils.ResponseSuccess(w, "Task updated successfully", resp)
}

// AdminDelete handles DELETE /api/tasks/admin/task/{id} (admin only)
func (h *TaskHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.AdminDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete task")
		return
	}

	utils.ResponseSuccess(w, "Task deleted by admin", nil)
}

// Analytics handles GET /api/tasks/admin/analytics (admin only)
func (h *TaskHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Analytics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get analytics")
		return
	}

	utils.ResponseSuccess(w, "Analytics retrieved successfully", resp)
}
