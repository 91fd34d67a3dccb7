package models

// Profile holds the portfolio owner's identity and metadata. The site is
// single-tenant: the first-created profile is treated as the owner.
type Profile struct {
	Model
	FullName string `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	Title    string `json:"title" db:"title" gorm:"type:text;not null"`
	Bio      string `json:"bio" db:"bio" gorm:"type:text;not null"`
	Tagline  string `json:"tagline" db:"tagline" gorm:"type:text"`

	ProfileImage string `json:"profile_image,omitempty" db:"profile_image" gorm:"type:text"`
	HeroImage    string `json:"hero_image,omitempty" db:"hero_image" gorm:"type:text"`

	IsAvailable bool   `json:"is_available" db:"is_available" gorm:"not null"`
	StatusText  string `json:"status_text" db:"status_text" gorm:"type:text;default:'Open to Opportunities'"`

	YearsExperience int `json:"years_experience" db:"years_experience" gorm:"not null;default:0"`

	Email    string `json:"email" db:"email" gorm:"type:text;not null"`
	Phone    string `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Location string `json:"location,omitempty" db:"location" gorm:"type:text"`

	ResumeFile string `json:"resume_file,omitempty" db:"resume_file" gorm:"type:text"`

	MetaDescription string `json:"meta_description,omitempty" db:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords,omitempty" db:"meta_keywords" gorm:"type:text"`

	ShowStats     bool `json:"show_stats" db:"show_stats" gorm:"not null"`
	ShowTechStack bool `json:"show_tech_stack" db:"show_tech_stack" gorm:"not null"`

	SocialLinks    []SocialLink    `json:"social_links,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Skills         []Skill         `json:"skills,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	ExpertiseAreas []ExpertiseArea `json:"expertise_areas,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Statistics     []Statistic     `json:"statistics,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
}
