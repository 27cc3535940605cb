package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id          uuid.UUID
	Title       string
	Description string
	UserId      uuid.UUID // owner, fixed at creation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
