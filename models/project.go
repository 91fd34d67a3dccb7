package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPlanned    ProjectStatus = "planned"
	ProjectArchived   ProjectStatus = "archived"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectCompleted:  "Completed",
	ProjectInProgress: "In Progress",
	ProjectPlanned:    "Planned",
	ProjectArchived:   "Archived",
}

func (s ProjectStatus) Label() string {
	if label, ok := projectStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

// Project is a portfolio project. The slug is derived from the title once at
// creation and stays stable across later title edits. Deleting the category
// nulls the reference; deleting the project cascades to its owned rows.
type Project struct {
	Model
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`

	Title            string `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Subtitle         string `json:"subtitle,omitempty" db:"subtitle" gorm:"type:text"`
	ShortDescription string `json:"short_description" db:"short_description" gorm:"type:text;not null"`
	FullDescription  string `json:"full_description" db:"full_description" gorm:"type:text"`

	Thumbnail     string `json:"thumbnail,omitempty" db:"thumbnail" gorm:"type:text"`
	FeaturedImage string `json:"featured_image,omitempty" db:"featured_image" gorm:"type:text"`

	CategoryID *uuid.UUID       `json:"category_id,omitempty" db:"category_id" gorm:"type:uuid;index"`
	Category   *ProjectCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags       TagList          `json:"tags" db:"tags" gorm:"type:text"`

	Status    ProjectStatus `json:"status" db:"status" gorm:"type:text;not null;default:'completed'"`
	StartDate *time.Time    `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time    `json:"end_date,omitempty" db:"end_date"`
	Duration  string        `json:"duration,omitempty" db:"duration" gorm:"type:text"`

	TeamSize  int    `json:"team_size" db:"team_size" gorm:"not null;default:1"`
	Role      string `json:"role,omitempty" db:"role" gorm:"type:text"`
	Client    string `json:"client,omitempty" db:"client" gorm:"type:text"`
	UserCount string `json:"user_count,omitempty" db:"user_count" gorm:"type:text"`

	GithubURL        string `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL          string `json:"live_url,omitempty" db:"live_url" gorm:"type:text"`
	DocumentationURL string `json:"documentation_url,omitempty" db:"documentation_url" gorm:"type:text"`

	IsFeatured  bool `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished bool `json:"is_published" db:"is_published" gorm:"not null"`
	Order       int  `json:"order" db:"order" gorm:"column:order;not null;default:0"`

	MetaDescription string `json:"meta_description,omitempty" db:"meta_description" gorm:"type:text"`

	Images           []ProjectImage      `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Technologies     []ProjectTechnology `json:"technologies,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Features         []ProjectFeature    `json:"features,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	TechnicalDetails []TechnicalDetail   `json:"technical_details,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Testimonials     []Testimonial       `json:"testimonials,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if err := p.Model.BeforeCreate(tx); err != nil {
		return err
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return nil
}

// ProjectImage is a gallery image owned by a project.
type ProjectImage struct {
	Model
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	Image     string    `json:"image" db:"image" gorm:"type:text;not null"`
	Caption   string    `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	AltText   string    `json:"alt_text" db:"alt_text" gorm:"type:text;not null"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

// ProjectTechnology is a technology used by a project, unique per
// (project, name).
type ProjectTechnology struct {
	Model
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_tech_unique"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_project_tech_unique"`
	Version   string    `json:"version,omitempty" db:"version" gorm:"type:text"`
	Icon      string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

// ProjectFeature is a key feature of a project.
type ProjectFeature struct {
	Model
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Icon        string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

// TechnicalDetail is an architecture note for a project, optionally carrying
// a code snippet with its highlighting language.
type TechnicalDetail struct {
	Model
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	CodeSnippet string    `json:"code_snippet,omitempty" db:"code_snippet" gorm:"type:text"`
	Language    string    `json:"language,omitempty" db:"language" gorm:"type:text"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}
