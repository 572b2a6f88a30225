package wire

import (
	"github.com/ritesh23s/task-manager/internal/adaptor"
	"github.com/ritesh23s/task-manager/pkg/middleware"
	"github.com/ritesh23s/task-manager/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTask(
	r chi.Router,
	taskHandler *adaptor.TaskHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Registered before the owner routes so /admin/* is not captured
	// by the {id} pattern.
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Route("/api/tasks/admin", func(r chi.Router) {
		r.Get("/users", taskHandler.AdminListUsers)
		r.Get("/analytics", taskHandler.Analytics)
		r.Put("/task/{id}", taskHandler.AdminUpdateStatus)
		r.Delete("/task/{id}", taskHandler.AdminDelete)
	})

	// ==================== OWNER ROUTES ====================
	r.With(middleware.Authenticate(tokens, log)).Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Get("/{id}", taskHandler.Get)
		r.Put("/{id}", taskHandler.UpdateStatus)
		r.Delete("/{id}", taskHandler.Delete)
	})
}
