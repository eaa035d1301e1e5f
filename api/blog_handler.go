package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/errs"
	"github.com/sinascience/portfolio-backend/models"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

func blogFilterFromQuery(r *http.Request) database.BlogFilter {
	q := r.URL.Query()
	filter := database.BlogFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
	}
	if filter.Status == "" && q.Get("published") == "true" {
		filter.Status = "published"
	}
	filter.Featured = boolQueryParam(r, "featured")
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}
	return filter
}

// listBlogs retrieves blog posts with tags and categories
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Param status query string false "Filter by status"
// @Param featured query bool false "Filter by featured flag"
// @Param category query string false "Filter by category slug"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Blog "List of blog posts"
// @Router /blogs [get]
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll(blogFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}
		if blogs == nil {
			blogs = []*models.Blog{}
		}

		h.responder.WriteJSON(w, blogs)
	}
}

func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// getBlogBySlug is the public article read: a miss is a 404, and a hit bumps
// the view counter (best effort, failures only logged).
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		if err := h.blogRepo.IncrementViews(blog.ID); err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to increment blog views")
		} else {
			blog.Views++
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new article. Slug defaults to a slugified title and
// read time is estimated from the content when not supplied.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required"))
			return
		}
		if req.Content == nil || *req.Content == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "content", "content is required"))
			return
		}

		blog := models.Blog{ID: uuid.New(), Status: "draft"}
		req.applyScalars(&blog)
		if blog.Slug == "" {
			blog.Slug = models.Slugify(blog.Title)
		}
		if blog.ReadTime == 0 {
			blog.ReadTime = models.EstimateReadTime(blog.Content)
		}
		if blog.Status == "published" && blog.PublishedAt == nil {
			now := time.Now()
			blog.PublishedAt = &now
		}

		var tags []models.Tag
		if req.Tags != nil {
			tags = tagRequestsToModels(*req.Tags)
		}
		var categories []models.Category
		if req.Categories != nil {
			categories = categoryRequestsToModels(*req.Categories)
		}

		if err := h.blogRepo.Add(&blog, tags, categories); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog", err))
			return
		}

		created, err := h.blogRepo.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateBlog applies scalar changes and replaces tag/category links for each
// relation present in the payload.
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		var req BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(blog)
		if blog.Status == "published" && blog.PublishedAt == nil {
			now := time.Now()
			blog.PublishedAt = &now
		}
		blog.Tags = nil
		blog.Categories = nil

		var tags *[]models.Tag
		if req.Tags != nil {
			converted := tagRequestsToModels(*req.Tags)
			tags = &converted
		}
		var categories *[]models.Category
		if req.Categories != nil {
			converted := categoryRequestsToModels(*req.Categories)
			categories = &converted
		}

		if err := h.blogRepo.Update(blog, tags, categories); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog", err))
			return
		}

		updated, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}
