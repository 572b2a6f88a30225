package adaptor

import (
	"net/http"

	"github.com/ritesh23s/task-manager/internal/dto/response"
	"github.com/ritesh23s/task-manager/internal/usecase"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// ToggleActive handles PUT /api/auth/admin/user/{id}/toggle (admin only)
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	isActive, err := h.service.ToggleActive(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle user")
		return
	}

	utils.ResponseSuccess(w, "User status updated", response.ToggleActiveResponse{IsActive: isActive})
}

// DeleteUser handles DELETE /api/auth/admin/user/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User and all related tasks deleted permanently", nil)
}
