package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged meal. Owner and creation time never change after insert.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	IsDiet      bool      `gorm:"not null" json:"is_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
