package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ritesh23s/task-manager/internal/data/entity"
	"github.com/ritesh23s/task-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAllByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)
	CountActiveByRole(ctx context.Context, role entity.UserRole) (int64, error)
	SetResetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt, lastSentAt time.Time) error
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteWithTasks(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, name, email, password, phone, email_verified, role, is_active,
		       reset_otp, reset_otp_expires_at, reset_otp_last_sent_at, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.EmailVerified,
		&user.Role,
		&user.IsActive,
		&user.ResetOTP,
		&user.ResetOTPExpiresAt,
		&user.ResetOTPLastSentAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record. Role assignment is part of the
// insert transaction: the exclusive table lock serializes the
// count-then-insert sequence, so exactly the first account ever created
// becomes admin even under concurrent registrations.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin create user tx", zap.Error(err))
		return fmt.Errorf("begin create user tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `LOCK TABLE users IN EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("lock users table: %w", err)
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	user.Role = entity.RoleUser
	if count == 0 {
		user.Role = entity.RoleAdmin
	}

	query := `
		INSERT INTO users (id, name, email, password, phone, email_verified,
		                   role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.EmailVerified,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create user: %w", err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindAllByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`

	rows, err := ur.db.Query(ctx, query, role)
	if err != nil {
		ur.log.Error("Failed to find users by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find users by role %s: %w", role, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1`

	var count int64
	if err := ur.db.QueryRow(ctx, query, role).Scan(&count); err != nil {
		ur.log.Error("Failed to count users by role", zap.Error(err))
		return 0, fmt.Errorf("count users by role %s: %w", role, err)
	}

	return count, nil
}

func (ur *userRepository) CountActiveByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = TRUE`

	var count int64
	if err := ur.db.QueryRow(ctx, query, role).Scan(&count); err != nil {
		ur.log.Error("Failed to count active users by role", zap.Error(err))
		return 0, fmt.Errorf("count active users by role %s: %w", role, err)
	}

	return count, nil
}

// SetResetOTP stamps a fresh reset code, its expiry and the last-sent
// time in one atomic update.
func (ur *userRepository) SetResetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt, lastSentAt time.Time) error {
	query := `
		UPDATE users
		SET reset_otp = $2, reset_otp_expires_at = $3, reset_otp_last_sent_at = $4,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, code, expiresAt, lastSentAt)
	if err != nil {
		ur.log.Error("Failed to set reset OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("set reset OTP for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ResetPassword stores the new hash and nulls the reset-OTP fields in a
// single statement, so the code cannot be replayed after the password change.
func (ur *userRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $2, reset_otp = NULL, reset_otp_expires_at = NULL,
		    reset_otp_last_sent_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		ur.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("reset password for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleActive flips is_active and returns the new state.
func (ur *userRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING is_active
	`

	var isActive bool
	err := ur.db.QueryRow(ctx, query, id).Scan(&isActive)
	if err == pgx.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		ur.log.Error("Failed to toggle user active status",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return false, fmt.Errorf("toggle active for %s: %w", id.String(), err)
	}

	return isActive, nil
}

// DeleteWithTasks removes the user and every task they own in one
// transaction. Either both deletes land or neither does; a successful
// return guarantees no orphaned tasks.
func (ur *userRepository) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin delete user tx", zap.Error(err))
		return fmt.Errorf("begin delete user tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, id); err != nil {
		ur.log.Error("Failed to delete user tasks",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete tasks of user %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete user: %w", err)
	}

	ur.log.Info("User and owned tasks deleted", zap.String("user_id", id.String()))
	return nil
}
