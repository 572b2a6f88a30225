package repository

import (
	"context"
	"fmt"

	"github.com/ritesh23s/task-manager/internal/data/entity"
	"github.com/ritesh23s/task-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status, priority string, limit, offset int) ([]*entity.Task, error)
	CountByUser(ctx context.Context, userID uuid.UUID, status, priority string) (int64, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type taskRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaskRepository(db database.PgxIface, log *zap.Logger) TaskRepository {
	return &taskRepository{
		db:  db,
		log: log.With(zap.String("repository", "task")),
	}
}

const taskColumns = `id, title, description, due_date, priority, status, user_id, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Priority,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, priority, status,
		                   user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create task",
			zap.Error(err),
			zap.String("user_id", task.UserID.String()),
			zap.String("title", task.Title),
		)
		return fmt.Errorf("create task for %s: %w", task.UserID.String(), err)
	}

	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find task by ID",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return nil, fmt.Errorf("find task by ID %s: %w", id.String(), err)
	}

	return task, nil
}

// taskFilter builds the WHERE clause for the optional status and
// priority filters. $1 is always the owner.
func taskFilter(status, priority string) (string, []any) {
	where := `WHERE user_id = $1`
	args := []any{}

	n := 2
	if status != "" {
		where += fmt.Sprintf(` AND status = $%d`, n)
		args = append(args, status)
		n++
	}
	if priority != "" {
		where += fmt.Sprintf(` AND priority = $%d`, n)
		args = append(args, priority)
		n++
	}

	return where, args
}

func (r *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID, status, priority string, limit, offset int) ([]*entity.Task, error) {
	where, filterArgs := taskFilter(status, priority)

	query := fmt.Sprintf(`SELECT %s FROM tasks %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		taskColumns, where, limit, offset)

	args := append([]any{userID}, filterArgs...)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find tasks by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find tasks for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *taskRepository) CountByUser(ctx context.Context, userID uuid.UUID, status, priority string) (int64, error) {
	where, filterArgs := taskFilter(status, priority)

	query := `SELECT COUNT(*) FROM tasks ` + where

	args := append([]any{userID}, filterArgs...)
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count tasks by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count tasks for %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *taskRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find all tasks by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find all tasks for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks rows: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE tasks SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update task status",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return fmt.Errorf("update task %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete task",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return fmt.Errorf("delete task %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *taskRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		r.log.Error("Failed to count tasks", zap.Error(err))
		return 0, fmt.Errorf("count all tasks: %w", err)
	}

	return count, nil
}

func (r *taskRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE status = $1`, status).Scan(&count); err != nil {
		r.log.Error("Failed to count tasks by status", zap.Error(err))
		return 0, fmt.Errorf("count tasks by status %s: %w", status, err)
	}

	return count, nil
}
