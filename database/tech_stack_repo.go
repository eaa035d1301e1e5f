package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinascience/portfolio-backend/models"
)

type TechStackRepo struct {
	db *gorm.DB
}

func NewTechStackRepo(db *gorm.DB) *TechStackRepo {
	return &TechStackRepo{db}
}

type TechStackFilter struct {
	Status   string
	Category string
}

// FindAll returns carousel technologies matching the filter, ordered for display.
func (r *TechStackRepo) FindAll(filter TechStackFilter) ([]*models.TechStack, error) {
	q := r.db.Order("sort_order ASC, created_at ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var stacks []*models.TechStack
	err := q.Find(&stacks).Error
	return stacks, err
}

// FindByID returns a tech stack entry by its ID, or nil when absent.
func (r *TechStackRepo) FindByID(id uuid.UUID) (*models.TechStack, error) {
	var stack models.TechStack
	err := r.db.First(&stack, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stack, nil
}

// Add inserts a new tech stack entry into the database
func (r *TechStackRepo) Add(stack *models.TechStack) error {
	return r.db.Create(stack).Error
}

// Update updates an existing tech stack entry in the database
func (r *TechStackRepo) Update(stack *models.TechStack) error {
	return r.db.Save(stack).Error
}

// Delete removes a tech stack entry from the database by id
func (r *TechStackRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TechStack{}, "id = ?", id).Error
}
