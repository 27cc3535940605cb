package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is also the admin create payload. Role defaults to "user".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest is a partial update; nil or blank fields are left unchanged.
type UpdateUserRequest struct {
	Id       uuid.UUID `json:"-"`
	Username *string   `json:"username"`
	Password *string   `json:"password"`
	Role     *string   `json:"role"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
