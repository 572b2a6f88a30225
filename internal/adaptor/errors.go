package adaptor

import (
	"errors"
	"net/http"

	"github.com/ritesh23s/task-manager/internal/usecase"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses. Anything
// unanticipated becomes a generic 500; the detail stays in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidOTP):
		log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid or expired OTP", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid credentials", nil)

	case errors.Is(err, usecase.ErrEmailNotVerified):
		log.Warn(operation+" failed - email not verified", zap.Error(err))
		utils.ResponseForbidden(w, "Email not verified")

	case errors.Is(err, usecase.ErrAccountDisabled):
		log.Warn(operation+" failed - account disabled", zap.Error(err))
		utils.ResponseForbidden(w, "Account disabled")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Access denied")

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrTaskNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrTooManyRequests):
		log.Warn(operation+" rate limited", zap.Error(err))
		utils.ResponseTooManyRequests(w, "Please wait before retrying")

	case errors.Is(err, usecase.ErrInvalidID):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
