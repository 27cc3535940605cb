package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	Role         string // opaque; access control only tests membership
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
