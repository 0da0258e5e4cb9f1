package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a free-text annotation on a patient's record. Only Content is
// mutable once written.
type Note struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey;size:36"`
	MRN       string    `json:"mrn" gorm:"column:mrn;size:64;not null;index"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index"`
	CreatedBy string    `json:"created_by" gorm:"column:created_by;size:191"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Note) TableName() string { return "patient_notes" }

// BeforeCreate assigns a random id when the caller did not provide one.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NoteRequest represents a note create/update payload
// @Description Note content
type NoteRequest struct {
	Content string `json:"content" example:"Patient stable overnight"`
}
