package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotebookRef points a note at a notebook: {"notebook": {"id": "..."}}.
type NotebookRef struct {
	Id *uuid.UUID `json:"id"`
}

type CreateNoteRequest struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Notebook *NotebookRef `json:"notebook"`
}

type UpdateNoteRequest struct {
	Id       uuid.UUID    `json:"-"`
	Title    *string      `json:"title"`
	Content  *string      `json:"content"`
	Notebook *NotebookRef `json:"notebook"`
}

type NoteResponse struct {
	Id         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	NotebookId uuid.UUID      `json:"notebook_id"`
	Tags       []*TagResponse `json:"tags"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
