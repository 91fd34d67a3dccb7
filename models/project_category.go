package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ProjectCategory groups projects. The slug is derived from the name exactly
// once, at creation, when none is supplied.
type ProjectCategory struct {
	Model
	Name        string `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Slug        string `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Description string `json:"description,omitempty" db:"description" gorm:"type:text"`
	Order       int    `json:"order" db:"order" gorm:"column:order;not null;default:0"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

func (c *ProjectCategory) BeforeCreate(tx *gorm.DB) error {
	if err := c.Model.BeforeCreate(tx); err != nil {
		return err
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
