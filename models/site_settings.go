package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettingsID is the fixed identity of the settings singleton. Every save
// collapses onto this key.
var SiteSettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SiteSettings holds the global site configuration. Exactly one logical
// record exists; load it through SiteSettingsRepo rather than creating rows
// directly.
type SiteSettings struct {
	Model
	SiteName      string `json:"site_name" db:"site_name" gorm:"type:text;not null;default:'Portfolio'"`
	SiteTagline   string `json:"site_tagline" db:"site_tagline" gorm:"type:text"`
	FooterText    string `json:"footer_text" db:"footer_text" gorm:"type:text"`
	CopyrightText string `json:"copyright_text" db:"copyright_text" gorm:"type:text"`

	GoogleAnalyticsID  string `json:"google_analytics_id,omitempty" db:"google_analytics_id" gorm:"type:text"`
	GoogleTagManagerID string `json:"google_tag_manager_id,omitempty" db:"google_tag_manager_id" gorm:"type:text"`

	ContactEmail      string `json:"contact_email" db:"contact_email" gorm:"type:text"`
	NotificationEmail string `json:"notification_email,omitempty" db:"notification_email" gorm:"type:text"`

	EnableBlog         bool `json:"enable_blog" db:"enable_blog" gorm:"not null;default:false"`
	EnableContactForm  bool `json:"enable_contact_form" db:"enable_contact_form" gorm:"not null"`
	EnableTestimonials bool `json:"enable_testimonials" db:"enable_testimonials" gorm:"not null"`

	MaintenanceMode    bool   `json:"maintenance_mode" db:"maintenance_mode" gorm:"not null;default:false"`
	MaintenanceMessage string `json:"maintenance_message,omitempty" db:"maintenance_message" gorm:"type:text"`
}

// BeforeSave forces every write onto the singleton identity. Deletion is a
// no-op enforced by SiteSettingsRepo.
func (s *SiteSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = SiteSettingsID
	return nil
}
