package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

const StatusPending = "pending"

type Task struct {
	Base
	Title       string       `db:"title"`
	Description string       `db:"description"`
	DueDate     *time.Time   `db:"due_date"`
	Priority    TaskPriority `db:"priority"`
	Status      string       `db:"status"`
	// owner, set at creation and never reassigned
	UserID uuid.UUID `db:"user_id"`
}
