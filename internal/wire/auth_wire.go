package wire

import (
	"github.com/ritesh23s/task-manager/internal/adaptor"
	"github.com/ritesh23s/task-manager/pkg/middleware"
	"github.com/ritesh23s/task-manager/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/register/verify-email", authHandler.VerifyEmail)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Route("/api/auth/admin/user", func(r chi.Router) {
		r.Put("/{id}/toggle", userHandler.ToggleActive)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
