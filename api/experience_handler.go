package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/errs"
	"github.com/sinascience/portfolio-backend/models"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

func experienceFilterFromQuery(r *http.Request) database.ExperienceFilter {
	filter := database.ExperienceFilter{
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
	}
	if filter.Status == "" && r.URL.Query().Get("active") == "true" {
		filter.Status = "active"
	}
	return filter
}

func (h experienceHandler) listExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll(experienceFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}
		if experiences == nil {
			experiences = []*models.Experience{}
		}

		h.responder.WriteJSON(w, experiences)
	}
}

func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required"))
			return
		}

		experience := models.Experience{ID: uuid.New(), Type: "work", Status: "active"}
		req.applyScalars(&experience)
		if req.Achievements != nil {
			experience.Achievements = achievementItemsToModels(*req.Achievements, experience.ID)
		}
		if req.Skills != nil {
			experience.Skills = experienceSkillItemsToModels(*req.Skills, experience.ID)
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		created, err := h.experienceRepo.FindByID(experience.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "experience", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateExperience applies scalar changes and replaces each child collection
// present in the payload (see updateProject for the replacement contract).
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		var req ExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(experience)
		experience.Achievements = nil
		experience.Skills = nil

		var children database.ExperienceChildSets
		if req.Achievements != nil {
			items := achievementItemsToModels(*req.Achievements, experienceID)
			children.Achievements = &items
		}
		if req.Skills != nil {
			items := experienceSkillItemsToModels(*req.Skills, experienceID)
			children.Skills = &items
		}

		if err := h.experienceRepo.Update(experience, children); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		updated, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "experience", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}
