package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a top-level skill catalog entry (distinct from the skills owned
// by an Experience row).
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text"`
	Category    string    `json:"category" db:"category" gorm:"type:text;index"`
	Proficiency string    `json:"proficiency" db:"proficiency" gorm:"type:text;not null;default:intermediate"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:active;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TechStack is an entry in the public technology carousel, independent of
// any project's owned tech list.
type TechStack struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Color      string    `json:"color" db:"color" gorm:"type:text"`
	Background string    `json:"background" db:"background" gorm:"type:text"`
	Border     string    `json:"border" db:"border" gorm:"type:text"`
	Category   string    `json:"category" db:"category" gorm:"type:text;index"`
	SortOrder  int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	Status     string    `json:"status" db:"status" gorm:"type:text;not null;default:active;index"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

func (t *TechStack) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ContactMethod is a way to reach the site owner (email, socials, etc.).
type ContactMethod struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text"`
	Label       string    `json:"label" db:"label" gorm:"type:text;not null"`
	Value       string    `json:"value" db:"value" gorm:"type:text;not null"`
	Href        string    `json:"href" db:"href" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:active;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (c *ContactMethod) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
