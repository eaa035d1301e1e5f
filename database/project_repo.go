package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sinascience/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows FindAll; zero values mean "no filter".
type ProjectFilter struct {
	Status   string
	Featured *bool
}

// ProjectChildSets carries the child collections of an update payload. A nil
// slice pointer means the key was omitted and the stored collection is left
// untouched; a pointer to an empty slice deletes every child.
type ProjectChildSets struct {
	TechStack *[]models.ProjectTech
	Metrics   *[]models.ProjectMetric
	Features  *[]models.ProjectFeature
	Images    *[]models.ProjectImage
}

func (r *ProjectRepo) withChildren() *gorm.DB {
	return r.db.
		Preload("TechStack", sortOrderAsc).
		Preload("Metrics", sortOrderAsc).
		Preload("Features", sortOrderAsc).
		Preload("Images", sortOrderAsc)
}

// FindAll returns projects matching the filter, ordered for display.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, error) {
	q := r.withChildren().Order("sort_order ASC, created_at ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}

	var projects []*models.Project
	err := q.Find(&projects).Error
	return projects, err
}

// FindByID returns a project with all child collections, or nil when absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.withChildren().First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project together with any child rows already attached to
// it, as one transaction.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists the parent's scalar fields and fully replaces each child
// collection present in children, all inside one transaction.
func (r *ProjectRepo) Update(project *models.Project, children ProjectChildSets) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		if children.TechStack != nil {
			if err := replaceOwned(tx, "project_id", project.ID, *children.TechStack); err != nil {
				return err
			}
		}
		if children.Metrics != nil {
			if err := replaceOwned(tx, "project_id", project.ID, *children.Metrics); err != nil {
				return err
			}
		}
		if children.Features != nil {
			if err := replaceOwned(tx, "project_id", project.ID, *children.Features); err != nil {
				return err
			}
		}
		if children.Images != nil {
			if err := replaceOwned(tx, "project_id", project.ID, *children.Images); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a project and all of its children. Children are deleted
// explicitly so no orphans survive even without FK enforcement.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMetric{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
