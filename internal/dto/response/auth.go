package response

import (
	"github.com/ritesh23s/task-manager/internal/data/entity"
)

type LoginResponse struct {
	Token string          `json:"token"`
	Role  entity.UserRole `json:"role"`
	Name  string          `json:"name"`
}

type ToggleActiveResponse struct {
	IsActive bool `json:"isActive"`
}

type UserResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    *string         `json:"phone,omitempty"`
	Role     entity.UserRole `json:"role"`
	IsActive bool            `json:"isActive"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
