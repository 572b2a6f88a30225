package request

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    string     `json:"priority" validate:"required,oneof=Low Medium High"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}

// TaskListFilter carries the optional list filters parsed from query
// parameters; empty means no filter.
type TaskListFilter struct {
	Status   string `validate:"omitempty,max=50"`
	Priority string `validate:"omitempty,oneof=Low Medium High"`
	Page     int
}
