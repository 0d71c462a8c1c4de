package response

import (
	"github.com/monnybrand/the-shots-system/internal/data/entity"
)

type RegisterResponse struct {
	UserID int64 `json:"userId"`
}

// UserResponse is the login payload the frontend keeps in local storage
type UserResponse struct {
	ID       int64           `json:"id"`
	FullName string          `json:"full_name"`
	Role     entity.UserRole `json:"role"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
