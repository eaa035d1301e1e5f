package database

import (
	"gorm.io/gorm"

	"github.com/sinascience/portfolio-backend/models"
)

type Database struct {
	projectRepo       *ProjectRepo
	experienceRepo    *ExperienceRepo
	blogRepo          *BlogRepo
	skillRepo         *SkillRepo
	techStackRepo     *TechStackRepo
	contactMethodRepo *ContactMethodRepo
	settingRepo       *SettingRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:       NewProjectRepo(db),
		experienceRepo:    NewExperienceRepo(db),
		blogRepo:          NewBlogRepo(db),
		skillRepo:         NewSkillRepo(db),
		techStackRepo:     NewTechStackRepo(db),
		contactMethodRepo: NewContactMethodRepo(db),
		settingRepo:       NewSettingRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) TechStackRepo() *TechStackRepo {
	return d.techStackRepo
}

func (d Database) ContactMethodRepo() *ContactMethodRepo {
	return d.contactMethodRepo
}

func (d Database) SettingRepo() *SettingRepo {
	return d.settingRepo
}

// AutoMigrate creates or updates every table the repositories read from.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.ProjectTech{},
		&models.ProjectMetric{},
		&models.ProjectFeature{},
		&models.ProjectImage{},
		&models.Experience{},
		&models.ExperienceAchievement{},
		&models.ExperienceSkill{},
		&models.Blog{},
		&models.Tag{},
		&models.Category{},
		&models.Skill{},
		&models.TechStack{},
		&models.ContactMethod{},
		&models.Setting{},
	)
}

// sortOrderAsc is the shared Preload scope: every eager-loaded child
// collection comes back pre-sorted, callers never re-sort.
func sortOrderAsc(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// replaceOwned swaps a parent's entire owned child set: delete every row
// keyed by the parent, then bulk-insert the provided batch. Must run inside
// the caller's transaction so a failed insert rolls the delete back.
func replaceOwned[T any](tx *gorm.DB, fkColumn string, parentID any, items []T) error {
	var zero T
	if err := tx.Where(fkColumn+" = ?", parentID).Delete(&zero).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}
