package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategory enumerates the skill groupings shown on the site.
type SkillCategory string

const (
	SkillBackend  SkillCategory = "backend"
	SkillFrontend SkillCategory = "frontend"
	SkillDatabase SkillCategory = "database"
	SkillDevOps   SkillCategory = "devops"
	SkillTools    SkillCategory = "tools"
	SkillOther    SkillCategory = "other"
)

var skillCategoryLabels = map[SkillCategory]string{
	SkillBackend:  "Backend",
	SkillFrontend: "Frontend",
	SkillDatabase: "Database",
	SkillDevOps:   "DevOps",
	SkillTools:    "Tools",
	SkillOther:    "Other",
}

// SkillCategories lists the categories in display order.
var SkillCategories = []SkillCategory{
	SkillBackend, SkillFrontend, SkillDatabase, SkillDevOps, SkillTools, SkillOther,
}

func (c SkillCategory) Label() string {
	if label, ok := skillCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c SkillCategory) Valid() bool {
	_, ok := skillCategoryLabels[c]
	return ok
}

// Skill is a technology or competency owned by a profile. Name is unique per
// profile; proficiency is clamped to [0,100] on every save.
type Skill struct {
	Model
	ProfileID   uuid.UUID     `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;uniqueIndex:idx_skill_profile_name"`
	Name        string        `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_skill_profile_name"`
	Category    SkillCategory `json:"category" db:"category" gorm:"type:text;not null"`
	Proficiency int           `json:"proficiency" db:"proficiency" gorm:"not null;default:0"`
	Icon        string        `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Description string        `json:"description,omitempty" db:"description" gorm:"type:text"`
	Order       int           `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	IsFeatured  bool          `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if s.Proficiency < 0 {
		s.Proficiency = 0
	}
	if s.Proficiency > 100 {
		s.Proficiency = 100
	}
	return nil
}
