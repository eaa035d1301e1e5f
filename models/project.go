package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project with its owned child collections.
// Children are never addressed outside their project: updates replace them
// wholesale and deleting the project removes them.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Subtitle    string    `json:"subtitle" db:"subtitle" gorm:"type:text"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:draft;index"`
	Featured    bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	TechStack []ProjectTech    `json:"techStack" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Metrics   []ProjectMetric  `json:"metrics" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Features  []ProjectFeature `json:"features" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Images    []ProjectImage   `json:"images" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProjectTech is one technology entry on a project's stack list.
type ProjectTech struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_tech_project_id"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	SortOrder int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (t *ProjectTech) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ProjectMetric is a headline number shown on a project card.
type ProjectMetric struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_metric_project_id"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	Icon      string    `json:"icon" db:"icon" gorm:"type:text"`
	Color     string    `json:"color" db:"color" gorm:"type:text"`
	SortOrder int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (m *ProjectMetric) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ProjectFeature describes one highlighted capability of a project.
type ProjectFeature struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID   uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_feature_project_id"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Impact      string    `json:"impact" db:"impact" gorm:"type:text"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (f *ProjectFeature) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ProjectImage is a gallery image attached to a project.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_image_project_id"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	SortOrder int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
}

func (i *ProjectImage) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
