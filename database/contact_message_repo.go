package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindByID returns a contact message by its ID
func (r *ContactMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindAll returns all contact messages, newest first, optionally filtered by
// status.
func (r *ContactMessageRepo) FindAll(status models.MessageStatus) ([]models.ContactMessage, error) {
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var messages []models.ContactMessage
	err := q.Find(&messages).Error
	return messages, err
}
