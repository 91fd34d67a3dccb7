package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindPublished returns the profile's published testimonials, featured first.
// A limit of 0 returns all of them.
func (r *TestimonialRepo) FindPublished(profileID uuid.UUID, limit int) ([]models.Testimonial, error) {
	q := r.db.Where("profile_id = ? AND is_published = ?", profileID, true).
		Order(`is_featured DESC, "order" ASC, created_at DESC`)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var testimonials []models.Testimonial
	err := q.Find(&testimonials).Error
	return testimonials, err
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update updates an existing testimonial in the database
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial from the database by id
func (r *TestimonialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{Model: models.Model{ID: id}}).Error
}
