package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritesh23s/task-manager/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ToggleActive(ctx context.Context, userID string) (bool, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// ToggleActive flips the user's active status and returns the new
// state. Calling it twice lands back where it started.
func (us *userService) ToggleActive(ctx context.Context, userID string) (bool, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return false, fmt.Errorf("invalid user ID %q: %w", userID, ErrInvalidID)
	}

	isActive, err := us.userRepo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrUserNotFound
		}
		us.log.Error("Failed to toggle user", zap.Error(err), zap.String("user_id", userID))
		return false, err
	}

	us.log.Info("User active status toggled",
		zap.String("user_id", userID),
		zap.Bool("is_active", isActive),
	)

	return isActive, nil
}

// DeleteUser hard-deletes the account and every task it owns as one
// unit of work. If the task sweep cannot complete, nothing is deleted.
func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", userID, ErrInvalidID)
	}

	if err := us.userRepo.DeleteWithTasks(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	return nil
}
