package models

import (
	"time"

	"github.com/google/uuid"
)

type Material struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Semester    string    `json:"semester"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName" gorm:"uniqueIndex;not null"`
	FilePath    string    `json:"filePath" gorm:"not null"`
	UploadedAt  time.Time `json:"uploadedAt" gorm:"autoCreateTime"`
}
