package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sinascience/portfolio-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// BlogFilter narrows FindAll. Limit/Offset paginate the listing; zero Limit
// returns everything.
type BlogFilter struct {
	Status   string
	Featured *bool
	Category string
	Limit    int
	Offset   int
}

func (r *BlogRepo) withRelations() *gorm.DB {
	return r.db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") })
}

// FindAll returns blog posts newest first, with tags and categories loaded.
func (r *BlogRepo) FindAll(filter BlogFilter) ([]*models.Blog, error) {
	q := r.withRelations().Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Category != "" {
		q = q.
			Joins("JOIN blog_categories ON blog_categories.blog_id = blogs.id").
			Joins("JOIN categories ON categories.id = blog_categories.category_id").
			Where("categories.slug = ?", filter.Category)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var blogs []*models.Blog
	err := q.Find(&blogs).Error
	return blogs, err
}

// FindByID returns a post by internal id, or nil when absent.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.withRelations().First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a post by its public slug, or nil when absent.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.withRelations().First(&blog, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a post and links it to upserted tags and categories in one
// transaction.
func (r *BlogRepo) Add(blog *models.Blog, tags []models.Tag, categories []models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(blog).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			upserted, err := upsertTags(tx, tags)
			if err != nil {
				return err
			}
			if err := tx.Model(blog).Association("Tags").Replace(upserted); err != nil {
				return err
			}
		}
		if len(categories) > 0 {
			upserted, err := upsertCategories(tx, categories)
			if err != nil {
				return err
			}
			if err := tx.Model(blog).Association("Categories").Replace(upserted); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update persists scalar fields and, for each relation slice that is
// non-nil, replaces the full link set. Tags and categories are shared rows,
// so replacement swaps join-table links rather than deleting the rows.
func (r *BlogRepo) Update(blog *models.Blog, tags *[]models.Tag, categories *[]models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(blog).Error; err != nil {
			return err
		}
		if tags != nil {
			upserted, err := upsertTags(tx, *tags)
			if err != nil {
				return err
			}
			if err := tx.Model(blog).Association("Tags").Replace(upserted); err != nil {
				return err
			}
		}
		if categories != nil {
			upserted, err := upsertCategories(tx, *categories)
			if err != nil {
				return err
			}
			if err := tx.Model(blog).Association("Categories").Replace(upserted); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a post and its join-table links. Shared tag/category rows
// stay behind for other posts.
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		blog := models.Blog{ID: id}
		if err := tx.Model(&blog).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&blog).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", id).Error
	})
}

// IncrementViews bumps the view counter without touching UpdatedAt.
func (r *BlogRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// upsertTags resolves incoming tags against the shared tag table by slug,
// creating missing rows and refreshing display fields on existing ones.
func upsertTags(tx *gorm.DB, tags []models.Tag) ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.Slug == "" {
			tag.Slug = models.Slugify(tag.Name)
		}
		var existing models.Tag
		err := tx.Where("slug = ?", tag.Slug).First(&existing).Error
		switch {
		case err == nil:
			if tag.Name != "" && (existing.Name != tag.Name || existing.Color != tag.Color) {
				existing.Name = tag.Name
				existing.Color = tag.Color
				if err := tx.Save(&existing).Error; err != nil {
					return nil, err
				}
			}
			out = append(out, existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
			out = append(out, tag)
		default:
			return nil, err
		}
	}
	return out, nil
}

func upsertCategories(tx *gorm.DB, categories []models.Category) ([]models.Category, error) {
	out := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if category.Slug == "" {
			category.Slug = models.Slugify(category.Name)
		}
		var existing models.Category
		err := tx.Where("slug = ?", category.Slug).First(&existing).Error
		switch {
		case err == nil:
			if category.Name != "" && existing.Name != category.Name {
				existing.Name = category.Name
				if err := tx.Save(&existing).Error; err != nil {
					return nil, err
				}
			}
			out = append(out, existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&category).Error; err != nil {
				return nil, err
			}
			out = append(out, category)
		default:
			return nil, err
		}
	}
	return out, nil
}
