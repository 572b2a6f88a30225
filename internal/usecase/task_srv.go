package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ritesh23s/task-manager/internal/data/entity"
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/internal/dto/request"
	"github.com/ritesh23s/task-manager/internal/dto/response"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tasksPerPage matches the dashboard page size.
const tasksPerPage = 5

type TaskService interface {
	List(ctx context.Context, userID uuid.UUID, filter *request.TaskListFilter) (*response.TaskListResponse, error)
	Get(ctx context.Context, userID uuid.UUID, taskID string) (*response.TaskResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateTaskRequest) (*response.TaskResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, taskID string, status string) (*response.TaskResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, taskID string) error

	AdminListUsersWithTasks(ctx context.Context) ([]response.UserWithTasksResponse, error)
	AdminUpdateStatus(ctx context.Context, taskID string, status string) (*response.TaskResponse, error)
	AdminDelete(ctx context.Context, taskID string) error
	Analytics(ctx context.Context) (*response.AnalyticsResponse, error)
}

type taskService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewTaskService(repo *repository.Repository, log *zap.Logger) TaskService {
	return &taskService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// List returns the caller's tasks, newest first, with optional status
// and priority filters.
func (ts *taskService) List(ctx context.Context, userID uuid.UUID, filter *request.TaskListFilter) (*response.TaskListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := utils.CalculateOffset(page, tasksPerPage)

	total, err := ts.repo.Task.CountByUser(ctx, userID, filter.Status, filter.Priority)
	if err != nil {
		ts.log.Error("Failed to count tasks", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	tasks, err := ts.repo.Task.FindByUser(ctx, userID, filter.Status, filter.Priority, tasksPerPage, offset)
	if err != nil {
		ts.log.Error("Failed to list tasks", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	return &response.TaskListResponse{
		Tasks:      response.TasksToResponse(tasks),
		Page:       page,
		TotalPages: utils.CalculateTotalPages(total, tasksPerPage),
		Total:      total,
	}, nil
}

// findOwned loads a task and enforces ownership.
func (ts *taskService) findOwned(ctx context.Context, userID uuid.UUID, taskID string) (*entity.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID %q: %w", taskID, ErrInvalidID)
	}

	task, err := ts.repo.Task.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to find task", zap.Error(err), zap.String("task_id", taskID))
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.UserID != userID {
		ts.log.Warn("Task access denied",
			zap.String("task_id", taskID),
			zap.String("owner", task.UserID.String()),
			zap.String("caller", userID.String()),
		)
		return nil, ErrForbidden
	}

	return task, nil
}

func (ts *taskService) Get(ctx context.Context, userID uuid.UUID, taskID string) (*response.TaskResponse, error) {
	task, err := ts.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (ts *taskService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateTaskRequest) (*response.TaskResponse, error) {
	now := ts.now()
	task := &entity.Task{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    entity.TaskPriority(req.Priority),
		Status:      entity.StatusPending,
		UserID:      userID,
	}

	if err := ts.repo.Task.Create(ctx, task); err != nil {
		ts.log.Error("Failed to create task", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	ts.log.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (ts *taskService) UpdateStatus(ctx context.Context, userID uuid.UUID, taskID string, status string) (*response.TaskResponse, error) {
	task, err := ts.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := ts.repo.Task.UpdateStatus(ctx, task.ID, status); err != nil {
		ts.log.Error("Failed to update task status", zap.Error(err), zap.String("task_id", taskID))
		return nil, err
	}

	task.Status = status
	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (ts *taskService) Delete(ctx context.Context, userID uuid.UUID, taskID string) error {
	task, err := ts.findOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := ts.repo.Task.Delete(ctx, task.ID); err != nil {
		ts.log.Error("Failed to delete task", zap.Error(err), zap.String("task_id", taskID))
		return err
	}

	ts.log.Info("Task deleted",
		zap.String("task_id", taskID),
		zap.String("user_id", userID.String()),
	)

	return nil
}

// AdminListUsersWithTasks returns every ordinary user together with
// their tasks for the admin dashboard.
func (ts *taskService) AdminListUsersWithTasks(ctx context.Context) ([]response.UserWithTasksResponse, error) {
	users, err := ts.repo.User.FindAllByRole(ctx, entity.RoleUser)
	if err != nil {
		ts.log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	result := make([]response.UserWithTasksResponse, 0, len(users))
	for _, user := range users {
		tasks, err := ts.repo.Task.FindAllByUser(ctx, user.ID)
		if err != nil {
			ts.log.Error("Failed to list tasks for user", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, err
		}

		result = append(result, response.UserWithTasksResponse{
			User:  response.UserToResponse(user),
			Tasks: response.TasksToResponse(tasks),
		})
	}

	return result, nil
}

func (ts *taskService) AdminUpdateStatus(ctx context.Context, taskID string, status string) (*response.TaskResponse, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID %q: %w", taskID, ErrInvalidID)
	}

	task, err := ts.repo.Task.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to find task", zap.Error(err), zap.String("task_id", taskID))
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := ts.repo.Task.UpdateStatus(ctx, id, status); err != nil {
		ts.log.Error("Failed to update task status", zap.Error(err), zap.String("task_id", taskID))
		return nil, err
	}

	task.Status = status
	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (ts *taskService) AdminDelete(ctx context.Context, taskID string) error {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return fmt.Errorf("invalid task ID %q: %w", taskID, ErrInvalidID)
	}

	if err := ts.repo.Task.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		ts.log.Error("Failed to delete task", zap.Error(err), zap.String("task_id", taskID))
		return err
	}

	return nil
}

// Analytics aggregates user and task counts for the admin dashboard.
func (ts *taskService) Analytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	totalUsers, err := ts.repo.User.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	activeUsers, err := ts.repo.User.CountActiveByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	totalTasks, err := ts.repo.Task.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	completedTasks, err := ts.repo.Task.CountByStatus(ctx, "completed")
	if err != nil {
		return nil, err
	}

	return &response.AnalyticsResponse{
		Users: response.UserAnalytics{
			Total:    totalUsers,
			Active:   activeUsers,
			Disabled: totalUsers - activeUsers,
		},
		Tasks: response.TaskAnalytics{
			Total:     totalTasks,
			Completed: completedTasks,
			Pending:   totalTasks - completedTasks,
		},
	}, nil
}
