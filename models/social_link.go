package models

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialPlatform enumerates the supported social link platforms.
type SocialPlatform string

const (
	PlatformGitHub        SocialPlatform = "github"
	PlatformLinkedIn      SocialPlatform = "linkedin"
	PlatformTwitter       SocialPlatform = "twitter"
	PlatformEmail         SocialPlatform = "email"
	PlatformWebsite       SocialPlatform = "website"
	PlatformStackOverflow SocialPlatform = "stackoverflow"
	PlatformMedium        SocialPlatform = "medium"
	PlatformDev           SocialPlatform = "dev"
	PlatformOther         SocialPlatform = "other"
)

var socialPlatformLabels = map[SocialPlatform]string{
	PlatformGitHub:        "GitHub",
	PlatformLinkedIn:      "LinkedIn",
	PlatformTwitter:       "Twitter",
	PlatformEmail:         "Email",
	PlatformWebsite:       "Website",
	PlatformStackOverflow: "Stack Overflow",
	PlatformMedium:        "Medium",
	PlatformDev:           "Dev.to",
	PlatformOther:         "Other",
}

// Label returns the human-readable display name for the platform.
func (p SocialPlatform) Label() string {
	if label, ok := socialPlatformLabels[p]; ok {
		return label
	}
	return string(p)
}

// Valid reports whether the code is a recognized platform.
func (p SocialPlatform) Valid() bool {
	_, ok := socialPlatformLabels[p]
	return ok
}

// SocialLink is a social media or external link owned by a profile.
type SocialLink struct {
	Model
	ProfileID uuid.UUID      `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`
	Platform  SocialPlatform `json:"platform" db:"platform" gorm:"type:text;not null"`
	URL       string         `json:"url" db:"url" gorm:"type:text;not null"`
	Username  string         `json:"username,omitempty" db:"username" gorm:"type:text"`
	IconClass string         `json:"icon_class,omitempty" db:"icon_class" gorm:"type:text"`
	Order     int            `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	IsActive  bool           `json:"is_active" db:"is_active" gorm:"not null"`
}

// BeforeSave rejects unrecognized platform codes and syntactically invalid
// URLs at the write boundary.
func (l *SocialLink) BeforeSave(tx *gorm.DB) error {
	if !l.Platform.Valid() {
		return fmt.Errorf("unknown social platform %q", l.Platform)
	}
	// mailto: links carry no host, so only the scheme is required.
	if u, err := url.Parse(l.URL); err != nil || u.Scheme == "" {
		return fmt.Errorf("invalid social link url %q", l.URL)
	}
	return nil
}
