package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name string `json:"name"`
}

type UpdateTagRequest struct {
	Id   uuid.UUID `json:"-"`
	Name *string   `json:"name"`
}

type TagResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
