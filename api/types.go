package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/sinascience/portfolio-backend/models"
)

// Update payloads use pointer fields throughout: a nil field was omitted
// from the JSON body and leaves the stored value untouched. For child
// collections that distinction is load-bearing — nil means "keep", an empty
// array means "delete everything".

type ProjectRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`

	TechStack *[]TechItemRequest    `json:"techStack"`
	Metrics   *[]MetricItemRequest  `json:"metrics"`
	Features  *[]FeatureItemRequest `json:"features"`
	Images    *[]ImageItemRequest   `json:"images"`
}

// applyScalars copies the present scalar fields onto the model.
func (req ProjectRequest) applyScalars(project *models.Project) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Subtitle != nil {
		project.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.SortOrder = *req.Order
	}
}

type TechItemRequest struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

type MetricItemRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Order *int   `json:"order"`
}

type FeatureItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Order       *int   `json:"order"`
}

type ImageItemRequest struct {
	URL   string `json:"url"`
	Order *int   `json:"order"`
}

// childOrder resolves an item's sort order: explicit value wins, otherwise
// the position it appeared at in the submitted array.
func childOrder(explicit *int, index int) int {
	if explicit != nil {
		return *explicit
	}
	return index
}

func techItemsToModels(items []TechItemRequest, projectID uuid.UUID) []models.ProjectTech {
	out := make([]models.ProjectTech, 0, len(items))
	for i, item := range items {
		if item.Name == "" {
			continue
		}
		out = append(out, models.ProjectTech{
			ProjectID: projectID,
			Name:      item.Name,
			SortOrder: childOrder(item.Order, i),
		})
	}
	return out
}

func metricItemsToModels(items []MetricItemRequest, projectID uuid.UUID) []models.ProjectMetric {
	out := make([]models.ProjectMetric, 0, len(items))
	for i, item := range items {
		if item.Label == "" && item.Value == "" {
			continue
		}
		out = append(out, models.ProjectMetric{
			ProjectID: projectID,
			Label:     item.Label,
			Value:     item.Value,
			Icon:      item.Icon,
			Color:     item.Color,
			SortOrder: childOrder(item.Order, i),
		})
	}
	return out
}

func featureItemsToModels(items []FeatureItemRequest, projectID uuid.UUID) []models.ProjectFeature {
	out := make([]models.ProjectFeature, 0, len(items))
	for i, item := range items {
		if item.Title == "" {
			continue
		}
		out = append(out, models.ProjectFeature{
			ProjectID:   projectID,
			Title:       item.Title,
			Description: item.Description,
			Impact:      item.Impact,
			SortOrder:   childOrder(item.Order, i),
		})
	}
	return out
}

func imageItemsToModels(items []ImageItemRequest, projectID uuid.UUID) []models.ProjectImage {
	out := make([]models.ProjectImage, 0, len(items))
	for i, item := range items {
		if item.URL == "" {
			continue
		}
		out = append(out, models.ProjectImage{
			ProjectID: projectID,
			URL:       item.URL,
			SortOrder: childOrder(item.Order, i),
		})
	}
	return out
}

type ExperienceRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Order       *int    `json:"order"`

	// Structured date triple from the admin date pickers; when present it is
	// folded into the stored Period display string.
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Current   *bool      `json:"current"`

	Achievements *[]AchievementItemRequest     `json:"achievements"`
	Skills       *[]ExperienceSkillItemRequest `json:"skills"`
}

func (req ExperienceRequest) applyScalars(experience *models.Experience) {
	if req.Title != nil {
		experience.Title = *req.Title
	}
	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.Period != nil {
		experience.Period = *req.Period
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.Type != nil {
		experience.Type = *req.Type
	}
	if req.Status != nil {
		experience.Status = *req.Status
	}
	if req.Order != nil {
		experience.SortOrder = *req.Order
	}
	// The period string stays the source of truth; structured dates only
	// override it when the payload carries no explicit period.
	if req.Period == nil && req.StartDate != nil {
		current := req.Current != nil && *req.Current
		var end time.Time
		if req.EndDate != nil {
			end = *req.EndDate
		}
		experience.Period = models.FormatPeriod(*req.StartDate, end, current)
	}
}

type AchievementItemRequest struct {
	Text  string `json:"text"`
	Order *int   `json:"order"`
}

type ExperienceSkillItemRequest struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

func achievementItemsToModels(items []AchievementItemRequest, experienceID uuid.UUID) []models.ExperienceAchievement {
	out := make([]models.ExperienceAchievement, 0, len(items))
	for i, item := range items {
		if item.Text == "" {
			continue
		}
		out = append(out, models.ExperienceAchievement{
			ExperienceID: experienceID,
			Text:         item.Text,
			SortOrder:    childOrder(item.Order, i),
		})
	}
	return out
}

func experienceSkillItemsToModels(items []ExperienceSkillItemRequest, experienceID uuid.UUID) []models.ExperienceSkill {
	out := make([]models.ExperienceSkill, 0, len(items))
	for i, item := range items {
		if item.Name == "" {
			continue
		}
		out = append(out, models.ExperienceSkill{
			ExperienceID: experienceID,
			Name:         item.Name,
			SortOrder:    childOrder(item.Order, i),
		})
	}
	return out
}

type BlogRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Image       *string    `json:"image"`
	Author      *string    `json:"author"`
	Status      *string    `json:"status"`
	Featured    *bool      `json:"featured"`
	ReadTime    *int       `json:"readTime"`
	PublishedAt *time.Time `json:"publishedAt"`

	Tags       *[]TagRequest      `json:"tags"`
	Categories *[]CategoryRequest `json:"categories"`
}

func (req BlogRequest) applyScalars(blog *models.Blog) {
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Slug != nil {
		blog.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Status != nil {
		blog.Status = *req.Status
	}
	if req.Featured != nil {
		blog.Featured = *req.Featured
	}
	if req.ReadTime != nil {
		blog.ReadTime = *req.ReadTime
	}
	if req.PublishedAt != nil {
		blog.PublishedAt = req.PublishedAt
	}
}

type TagRequest struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func tagRequestsToModels(items []TagRequest) []models.Tag {
	out := make([]models.Tag, 0, len(items))
	for _, item := range items {
		if item.Name == "" && item.Slug == "" {
			continue
		}
		out = append(out, models.Tag{
			Name:  item.Name,
			Slug:  item.Slug,
			Color: item.Color,
		})
	}
	return out
}

func categoryRequestsToModels(items []CategoryRequest) []models.Category {
	out := make([]models.Category, 0, len(items))
	for _, item := range items {
		if item.Name == "" && item.Slug == "" {
			continue
		}
		out = append(out, models.Category{
			Name: item.Name,
			Slug: item.Slug,
		})
	}
	return out
}

type SkillRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Category    *string `json:"category"`
	Proficiency *string `json:"proficiency"`
	Order       *int    `json:"order"`
	Status      *string `json:"status"`
}

func (req SkillRequest) applyScalars(skill *models.Skill) {
	if req.Title != nil {
		skill.Title = *req.Title
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}
	if req.Color != nil {
		skill.Color = *req.Color
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Proficiency != nil {
		skill.Proficiency = *req.Proficiency
	}
	if req.Order != nil {
		skill.SortOrder = *req.Order
	}
	if req.Status != nil {
		skill.Status = *req.Status
	}
}

type TechStackRequest struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	Background *string `json:"background"`
	Border     *string `json:"border"`
	Category   *string `json:"category"`
	Order      *int    `json:"order"`
	Status     *string `json:"status"`
}

func (req TechStackRequest) applyScalars(stack *models.TechStack) {
	if req.Name != nil {
		stack.Name = *req.Name
	}
	if req.Color != nil {
		stack.Color = *req.Color
	}
	if req.Background != nil {
		stack.Background = *req.Background
	}
	if req.Border != nil {
		stack.Border = *req.Border
	}
	if req.Category != nil {
		stack.Category = *req.Category
	}
	if req.Order != nil {
		stack.SortOrder = *req.Order
	}
	if req.Status != nil {
		stack.Status = *req.Status
	}
}

type ContactMethodRequest struct {
	Icon        *string `json:"icon"`
	Label       *string `json:"label"`
	Value       *string `json:"value"`
	Href        *string `json:"href"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	Status      *string `json:"status"`
}

func (req ContactMethodRequest) applyScalars(method *models.ContactMethod) {
	if req.Icon != nil {
		method.Icon = *req.Icon
	}
	if req.Label != nil {
		method.Label = *req.Label
	}
	if req.Value != nil {
		method.Value = *req.Value
	}
	if req.Href != nil {
		method.Href = *req.Href
	}
	if req.Color != nil {
		method.Color = *req.Color
	}
	if req.Description != nil {
		method.Description = *req.Description
	}
	if req.Order != nil {
		method.SortOrder = *req.Order
	}
	if req.Status != nil {
		method.Status = *req.Status
	}
}

// SettingValueRequest is one entry of the { key: { value, type } } upsert
// map accepted by the settings and personal-info endpoints.
type SettingValueRequest struct {
	Value any    `json:"value"`
	Type  string `json:"type"`
}

// UploadResponse mirrors what the admin image picker expects back.
type UploadResponse struct {
	ImageURL     string `json:"imageUrl"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}
