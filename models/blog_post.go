package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// BlogStatus enumerates the publication states of a blog post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
	BlogArchived  BlogStatus = "archived"
)

var blogStatusLabels = map[BlogStatus]string{
	BlogDraft:     "Draft",
	BlogPublished: "Published",
	BlogArchived:  "Archived",
}

func (s BlogStatus) Label() string {
	if label, ok := blogStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s BlogStatus) Valid() bool {
	_, ok := blogStatusLabels[s]
	return ok
}

// BlogPost is an article owned by a profile. The slug is derived from the
// title once at creation; the view counter only ever increases, bumped once
// per detail-page view through an atomic update.
type BlogPost struct {
	Model
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`

	Title         string `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt       string `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content       string `json:"content" db:"content" gorm:"type:text;not null"`
	FeaturedImage string `json:"featured_image,omitempty" db:"featured_image" gorm:"type:text"`

	Category string  `json:"category" db:"category" gorm:"type:text"`
	Tags     TagList `json:"tags" db:"tags" gorm:"type:text"`

	Status      BlogStatus `json:"status" db:"status" gorm:"type:text;not null;default:'draft'"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at" gorm:"index"`

	ViewCount int `json:"view_count" db:"view_count" gorm:"not null;default:0"`
	ReadTime  int `json:"read_time" db:"read_time" gorm:"not null;default:0"`

	MetaDescription string `json:"meta_description,omitempty" db:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords,omitempty" db:"meta_keywords" gorm:"type:text"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if err := p.Model.BeforeCreate(tx); err != nil {
		return err
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return nil
}
