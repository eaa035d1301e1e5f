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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.SkillFilter{
			Status:   r.URL.Query().Get("status"),
			Category: r.URL.Query().Get("category"),
		}
		if filter.Status == "" && r.URL.Query().Get("active") == "true" {
			filter.Status = "active"
		}

		skills, err := h.skillRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		if skills == nil {
			skills = []*models.Skill{}
		}

		h.responder.WriteJSON(w, skills)
	}
}

func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required"))
			return
		}

		skill := models.Skill{ID: uuid.New(), Proficiency: "intermediate", Status: "active"}
		req.applyScalars(&skill)

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(skill)

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
