package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sinascience/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

type ExperienceFilter struct {
	Type   string
	Status string
}

// ExperienceChildSets mirrors ProjectChildSets for experience children.
type ExperienceChildSets struct {
	Achievements *[]models.ExperienceAchievement
	Skills       *[]models.ExperienceSkill
}

func (r *ExperienceRepo) withChildren() *gorm.DB {
	return r.db.
		Preload("Achievements", sortOrderAsc).
		Preload("Skills", sortOrderAsc)
}

func (r *ExperienceRepo) FindAll(filter ExperienceFilter) ([]*models.Experience, error) {
	q := r.withChildren().Order("sort_order ASC, created_at ASC")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var experiences []*models.Experience
	err := q.Find(&experiences).Error
	return experiences, err
}

func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.withChildren().First(&experience, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update persists scalar fields and fully replaces each child collection
// present in children, inside one transaction.
func (r *ExperienceRepo) Update(experience *models.Experience, children ExperienceChildSets) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(experience).Error; err != nil {
			return err
		}
		if children.Achievements != nil {
			if err := replaceOwned(tx, "experience_id", experience.ID, *children.Achievements); err != nil {
				return err
			}
		}
		if children.Skills != nil {
			if err := replaceOwned(tx, "experience_id", experience.ID, *children.Skills); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("experience_id = ?", id).Delete(&models.ExperienceAchievement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("experience_id = ?", id).Delete(&models.ExperienceSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Experience{}, "id = ?", id).Error
	})
}
