package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(100);not null"`
	Content    string    `gorm:"type:varchar(999);not null"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime;<-:create"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	Tags       []Tag     `gorm:"many2many:note_tags;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
