package wire

import (
	"net/http"

	"github.com/ritesh23s/task-manager/internal/adaptor"
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/internal/usecase"
	"github.com/ritesh23s/task-manager/pkg/mailer"
	"github.com/ritesh23s/task-manager/pkg/middleware"
	"github.com/ritesh23s/task-manager/pkg/otp"
	"github.com/ritesh23s/task-manager/pkg/token"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(
	repo *repository.Repository,
	otps *otp.Store,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, otps, tokens, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, handler.User, tokens, logger)
	wireTask(r, handler.Task, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
