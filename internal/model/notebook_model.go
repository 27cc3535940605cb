package model

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	Notes       []Note    `gorm:"foreignKey:NotebookId;constraint:OnDelete:CASCADE"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
