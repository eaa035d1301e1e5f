package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinascience/portfolio-backend/models"
)

type ContactMethodRepo struct {
	db *gorm.DB
}

func NewContactMethodRepo(db *gorm.DB) *ContactMethodRepo {
	return &ContactMethodRepo{db}
}

type ContactMethodFilter struct {
	Status string
}

// FindAll returns contact methods matching the filter, ordered for display.
func (r *ContactMethodRepo) FindAll(filter ContactMethodFilter) ([]*models.ContactMethod, error) {
	q := r.db.Order("sort_order ASC, created_at ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var methods []*models.ContactMethod
	err := q.Find(&methods).Error
	return methods, err
}

// FindByID returns a contact method by its ID, or nil when absent.
func (r *ContactMethodRepo) FindByID(id uuid.UUID) (*models.ContactMethod, error) {
	var method models.ContactMethod
	err := r.db.First(&method, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// Add inserts a new contact method into the database
func (r *ContactMethodRepo) Add(method *models.ContactMethod) error {
	return r.db.Create(method).Error
}

// Update updates an existing contact method in the database
func (r *ContactMethodRepo) Update(method *models.ContactMethod) error {
	return r.db.Save(method).Error
}

// Delete removes a contact method from the database by id
func (r *ContactMethodRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMethod{}, "id = ?", id).Error
}
