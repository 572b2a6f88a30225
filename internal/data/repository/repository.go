package repository

import (
	"github.com/ritesh23s/task-manager/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
	Task TaskRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Task: NewTaskRepository(db, log),
	}
}
