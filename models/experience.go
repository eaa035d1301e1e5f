package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience represents a work/education timeline entry. Period is the
// stored display string ("Jan 2020 - Present"); structured dates only exist
// at the API boundary, see ParsePeriod/FormatPeriod.
type Experience struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Company     string    `json:"company" db:"company" gorm:"type:text"`
	Location    string    `json:"location" db:"location" gorm:"type:text"`
	Period      string    `json:"period" db:"period" gorm:"type:text"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Type        string    `json:"type" db:"type" gorm:"type:text;not null;default:work;index"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:active;index"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Achievements []ExperienceAchievement `json:"achievements" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnDelete:CASCADE"`
	Skills       []ExperienceSkill       `json:"skills" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnDelete:CASCADE"`
}

func (e *Experience) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ExperienceAchievement is one bullet point under an experience entry.
type ExperienceAchievement struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ExperienceID uuid.UUID `json:"experienceId" db:"experience_id" gorm:"type:uuid;not null;index:idx_experience_achievement_experience_id"`
	Text         string    `json:"text" db:"text" gorm:"type:text;not null"`
	SortOrder    int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (a *ExperienceAchievement) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ExperienceSkill is a skill name attached to one experience entry, distinct
// from the top-level Skill catalog.
type ExperienceSkill struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ExperienceID uuid.UUID `json:"experienceId" db:"experience_id" gorm:"type:uuid;not null;index:idx_experience_skill_experience_id"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	SortOrder    int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (s *ExperienceSkill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
