package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the embedded base for all entities: UUID primary key plus
// created/updated timestamps maintained by GORM.
type Model struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// BeforeCreate assigns the ID application-side so the models work the same
// against postgres and the in-memory driver used in tests.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
