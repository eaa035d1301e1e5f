package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinascience/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

type SkillFilter struct {
	Status   string
	Category string
}

// FindAll returns skills matching the filter, ordered for display.
func (r *SkillRepo) FindAll(filter SkillFilter) ([]*models.Skill, error) {
	q := r.db.Order("sort_order ASC, created_at ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var skills []*models.Skill
	err := q.Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil when absent.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
