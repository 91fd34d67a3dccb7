package models

import "github.com/google/uuid"

// ExpertiseArea is an area of expertise shown in the about section. The
// technologies column stores comma-joined text but is exposed as a TagList.
type ExpertiseArea struct {
	Model
	ProfileID    uuid.UUID `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Icon         string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Technologies TagList   `json:"technologies" db:"technologies" gorm:"type:text"`
	Order        int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}
