package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindOwner returns the portfolio owner: the first-created profile.
func (r *ProfileRepo) FindOwner() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("created_at ASC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update updates an existing profile in the database
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete removes a profile and its owned collections by id
func (r *ProfileRepo) Delete(id uuid.UUID) error {
	return r.db.Select(
		"SocialLinks", "Skills", "ExpertiseAreas", "Statistics",
	).Delete(&models.Profile{Model: models.Model{ID: id}}).Error
}

// SocialLinks returns the profile's social links ordered for display,
// optionally restricted to active ones.
func (r *ProfileRepo) SocialLinks(profileID uuid.UUID, activeOnly bool) ([]models.SocialLink, error) {
	q := r.db.Where("profile_id = ?", profileID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var links []models.SocialLink
	err := q.Order(`"order" ASC, platform ASC`).Find(&links).Error
	return links, err
}

// Skills returns the profile's skills in category display order, optionally
// restricted to featured ones.
func (r *ProfileRepo) Skills(profileID uuid.UUID, featuredOnly bool) ([]models.Skill, error) {
	q := r.db.Where("profile_id = ?", profileID)
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var skills []models.Skill
	err := q.Order(`category ASC, "order" ASC, name ASC`).Find(&skills).Error
	return skills, err
}

// ExpertiseAreas returns the profile's expertise areas ordered for display.
// A limit of 0 returns all of them.
func (r *ProfileRepo) ExpertiseAreas(profileID uuid.UUID, limit int) ([]models.ExpertiseArea, error) {
	q := r.db.Where("profile_id = ?", profileID).Order(`"order" ASC, title ASC`)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var areas []models.ExpertiseArea
	err := q.Find(&areas).Error
	return areas, err
}

// Statistics returns the profile's active statistics ordered for display.
// A limit of 0 returns all of them.
func (r *ProfileRepo) Statistics(profileID uuid.UUID, limit int) ([]models.Statistic, error) {
	q := r.db.Where("profile_id = ? AND is_active = ?", profileID, true).
		Order(`"order" ASC, metric_type ASC`)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var stats []models.Statistic
	err := q.Find(&stats).Error
	return stats, err
}

// AddSkill inserts a skill for a profile
func (r *ProfileRepo) AddSkill(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// AddSocialLink inserts a social link for a profile
func (r *ProfileRepo) AddSocialLink(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// AddExpertiseArea inserts an expertise area for a profile
func (r *ProfileRepo) AddExpertiseArea(area *models.ExpertiseArea) error {
	return r.db.Create(area).Error
}

// AddStatistic inserts a statistic for a profile
func (r *ProfileRepo) AddStatistic(stat *models.Statistic) error {
	return r.db.Create(stat).Error
}
