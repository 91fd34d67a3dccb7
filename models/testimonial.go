package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a client review owned by a profile and optionally tied to a
// project. Rating is clamped to [1,5] on every save; deleting the referenced
// project nulls the reference.
type Testimonial struct {
	Model
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`

	ClientName    string `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ClientTitle   string `json:"client_title" db:"client_title" gorm:"type:text;not null"`
	ClientCompany string `json:"client_company,omitempty" db:"client_company" gorm:"type:text"`
	ClientImage   string `json:"client_image,omitempty" db:"client_image" gorm:"type:text"`

	Content string `json:"content" db:"content" gorm:"type:text;not null"`
	Rating  int    `json:"rating" db:"rating" gorm:"not null;default:5"`

	ProjectID *uuid.UUID `json:"project_id,omitempty" db:"project_id" gorm:"type:uuid;index"`
	Project   *Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`

	IsFeatured  bool `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished bool `json:"is_published" db:"is_published" gorm:"not null"`
	Order       int  `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

func (t *Testimonial) BeforeSave(tx *gorm.DB) error {
	if t.Rating < 1 {
		t.Rating = 1
	}
	if t.Rating > 5 {
		t.Rating = 5
	}
	return nil
}
