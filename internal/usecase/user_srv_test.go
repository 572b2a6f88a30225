package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ritesh23s/task-manager/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, users *fakeUserRepo, email string) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:          "Seeded",
		Email:         email,
		PasswordHash:  "hash",
		EmailVerified: true,
		IsActive:      true,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func seedTask(t *testing.T, tasks *fakeTaskRepo, userID uuid.UUID, title string) *entity.Task {
	t.Helper()

	now := time.Now()
	task := &entity.Task{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:    title,
		Priority: entity.PriorityMedium,
		Status:   entity.StatusPending,
		UserID:   userID,
	}
	require.NoError(t, tasks.Create(context.Background(), task))
	return task
}

func TestUserService_ToggleActiveRoundTrip(t *testing.T) {
	_, users, _ := newFakeRepository()
	svc := NewUserService(users, zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "toggle@example.com")

	isActive, err := svc.ToggleActive(ctx, user.ID.String())
	require.NoError(t, err)
	require.False(t, isActive)

	// toggling twice lands back where it started
	isActive, err = svc.ToggleActive(ctx, user.ID.String())
	require.NoError(t, err)
	require.True(t, isActive)
}

func TestUserService_ToggleActiveNotFound(t *testing.T) {
	_, users, _ := newFakeRepository()
	svc := NewUserService(users, zap.NewNop())

	_, err := svc.ToggleActive(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ToggleActiveBadID(t *testing.T) {
	_, users, _ := newFakeRepository()
	svc := NewUserService(users, zap.NewNop())

	_, err := svc.ToggleActive(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidID)
	require.Contains(t, err.Error(), "invalid user ID")

	require.ErrorIs(t, svc.DeleteUser(context.Background(), "not-a-uuid"), ErrInvalidID)
}

func TestUserService_DeleteUserCascades(t *testing.T) {
	_, users, tasks := newFakeRepository()
	svc := NewUserService(users, zap.NewNop())
	ctx := context.Background()

	victim := seedUser(t, users, "victim@example.com")
	other := seedUser(t, users, "other@example.com")
	seedTask(t, tasks, victim.ID, "victim task 1")
	seedTask(t, tasks, victim.ID, "victim task 2")
	kept := seedTask(t, tasks, other.ID, "other task")

	require.NoError(t, svc.DeleteUser(ctx, victim.ID.String()))

	// victim and their tasks gone, other user's task untouched
	gone, err := users.FindByID(ctx, victim.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	remaining, err := tasks.CountAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, remaining)

	survivor, err := tasks.FindByID(ctx, kept.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
}

func TestUserService_DeleteUserNotFound(t *testing.T) {
	_, users, _ := newFakeRepository()
	svc := NewUserService(users, zap.NewNop())

	err := svc.DeleteUser(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrUserNotFound)
}
