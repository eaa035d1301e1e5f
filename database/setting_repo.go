package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sinascience/portfolio-backend/models"
)

type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db}
}

// FindAll returns every setting row, ordered by key for stable output.
func (r *SettingRepo) FindAll() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// FindByKey returns one setting, or nil when the key is absent.
func (r *SettingRepo) FindByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// FindByKeys returns the settings for the given keys; absent keys are simply
// missing from the result.
func (r *SettingRepo) FindByKeys(keys []string) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Where("key IN ?", keys).Find(&settings).Error
	return settings, err
}

// Upsert writes a (key, value, type) triple, inserting or overwriting the
// row for that key.
func (r *SettingRepo) Upsert(key, value, settingType string) error {
	setting := models.Setting{
		Key:   key,
		Value: value,
		Type:  settingType,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      value,
			"type":       settingType,
			"updated_at": time.Now(),
		}),
	}).Create(&setting).Error
}

// Delete removes a setting row by key.
func (r *SettingRepo) Delete(key string) error {
	return r.db.Delete(&models.Setting{}, "key = ?", key).Error
}
