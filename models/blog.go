package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents an article. Slug is the public lookup key and must be
// unique; ID stays internal.
type Blog struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_slug"`
	Excerpt     string     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	Image       string     `json:"image" db:"image" gorm:"type:text"`
	Author      string     `json:"author" db:"author" gorm:"type:text"`
	Status      string     `json:"status" db:"status" gorm:"type:text;not null;default:draft;index"`
	Featured    bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	Views       int        `json:"views" db:"views" gorm:"not null;default:0"`
	ReadTime    int        `json:"readTime" db:"read_time" gorm:"column:read_time;not null;default:0"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	Tags       []Tag      `json:"tags" gorm:"many2many:blog_tags;constraint:OnDelete:CASCADE"`
	Categories []Category `json:"categories" gorm:"many2many:blog_categories;constraint:OnDelete:CASCADE"`
}

func (b *Blog) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Tag labels blog posts, shared across posts via the blog_tags join table.
type Tag struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name  string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug  string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tag_slug"`
	Color string    `json:"color" db:"color" gorm:"type:text"`
}

func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Category groups blog posts, shared across posts via blog_categories.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_category_slug"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single hyphen, producing a URL-safe slug.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// EstimateReadTime returns reading minutes for the given markdown content,
// assuming ~200 words per minute with a one minute floor.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
