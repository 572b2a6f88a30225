package usecase

import (
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/pkg/mailer"
	"github.com/ritesh23s/task-manager/pkg/otp"
	"github.com/ritesh23s/task-manager/pkg/token"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
	Task TaskService
}

func NewService(
	repo *repository.Repository,
	otps *otp.Store,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth: NewAuthService(repo, otps, tokens, mail, config, log),
		User: NewUserService(repo.User, log),
		Task: NewTaskService(repo, log),
	}
}
