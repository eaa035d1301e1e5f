package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/errs"
	"github.com/sinascience/portfolio-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectFilterFromQuery builds the repo filter from query-string params.
// `published=true` is shorthand for `status=published` used by the public
// site; `status` wins when both are present.
func projectFilterFromQuery(r *http.Request) database.ProjectFilter {
	filter := database.ProjectFilter{Status: r.URL.Query().Get("status")}
	if filter.Status == "" && r.URL.Query().Get("published") == "true" {
		filter.Status = "published"
	}
	filter.Featured = boolQueryParam(r, "featured")
	return filter
}

// boolQueryParam returns nil when the param is absent or unparsable.
func boolQueryParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// listProjects retrieves projects with their child collections
// @Summary List projects
// @Description Retrieves projects with tech stack, metrics, features and images, optionally filtered by status/featured
// @Tags Projects
// @Produce json
// @Param status query string false "Filter by status"
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]any "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(projectFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID with its child collections
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} map[string]any "Not Found - Project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project with its child collections
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body ProjectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]any "Bad Request - Invalid project data"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required"))
			return
		}

		project := models.Project{ID: uuid.New(), Status: "draft"}
		req.applyScalars(&project)
		if req.TechStack != nil {
			project.TechStack = techItemsToModels(*req.TechStack, project.ID)
		}
		if req.Metrics != nil {
			project.Metrics = metricItemsToModels(*req.Metrics, project.ID)
		}
		if req.Features != nil {
			project.Features = featureItemsToModels(*req.Features, project.ID)
		}
		if req.Images != nil {
			project.Images = imageItemsToModels(*req.Images, project.ID)
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload so the response reflects what a subsequent GET returns
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject applies scalar changes and replaces each child collection
// present in the payload
// @Summary Update project
// @Description Scalar fields update in place; each child collection present in the body fully replaces the stored one (empty array deletes all children, omitted key leaves them untouched)
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body ProjectRequest true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} map[string]any "Not Found - Project not found"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req ProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(project)
		// Preloaded children must not be re-saved alongside the parent; the
		// repo replaces them from the request instead.
		project.TechStack = nil
		project.Metrics = nil
		project.Features = nil
		project.Images = nil

		var children database.ProjectChildSets
		if req.TechStack != nil {
			items := techItemsToModels(*req.TechStack, projectID)
			children.TechStack = &items
		}
		if req.Metrics != nil {
			items := metricItemsToModels(*req.Metrics, projectID)
			children.Metrics = &items
		}
		if req.Features != nil {
			items := featureItemsToModels(*req.Features, projectID)
			children.Features = &items
		}
		if req.Images != nil {
			items := imageItemsToModels(*req.Images, projectID)
			children.Images = &items
		}

		if err := h.projectRepo.Update(project, children); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project and all of its owned children
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} map[string]any "Not Found - Project not found"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
