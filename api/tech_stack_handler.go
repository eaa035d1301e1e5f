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

// techStackHandler serves the public technology carousel catalog, which is
// independent of any project's owned tech list.
type techStackHandler struct {
	responder     Responder
	logger        zerolog.Logger
	techStackRepo *database.TechStackRepo
}

func newTechStackHandler(techStackRepo *database.TechStackRepo) techStackHandler {
	logger := log.With().Str("handlerName", "techStackHandler").Logger()

	return techStackHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		techStackRepo: techStackRepo,
	}
}

func (h techStackHandler) listTechStacks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.TechStackFilter{
			Status:   r.URL.Query().Get("status"),
			Category: r.URL.Query().Get("category"),
		}
		if filter.Status == "" && r.URL.Query().Get("active") == "true" {
			filter.Status = "active"
		}

		stacks, err := h.techStackRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tech stacks", err))
			return
		}
		if stacks == nil {
			stacks = []*models.TechStack{}
		}

		h.responder.WriteJSON(w, stacks)
	}
}

func (h techStackHandler) getTechStack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stackID, err := uuid.Parse(chi.URLParam(r, "techStackID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid techStackID"))
			return
		}

		stack, err := h.techStackRepo.FindByID(stackID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tech stack", err))
			return
		}
		if stack == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tech stack not found"))
			return
		}

		h.responder.WriteJSON(w, stack)
	}
}

func (h techStackHandler) createTechStack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TechStackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tech stack request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == nil || *req.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "name", "name is required"))
			return
		}

		stack := models.TechStack{ID: uuid.New(), Status: "active"}
		req.applyScalars(&stack)

		if err := h.techStackRepo.Add(&stack); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tech stack", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, stack)
	}
}

func (h techStackHandler) updateTechStack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stackID, err := uuid.Parse(chi.URLParam(r, "techStackID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid techStackID"))
			return
		}

		stack, err := h.techStackRepo.FindByID(stackID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tech stack", err))
			return
		}
		if stack == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tech stack not found"))
			return
		}

		var req TechStackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tech stack request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(stack)

		if err := h.techStackRepo.Update(stack); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tech stack", err))
			return
		}

		h.responder.WriteJSON(w, stack)
	}
}

func (h techStackHandler) deleteTechStack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stackID, err := uuid.Parse(chi.URLParam(r, "techStackID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid techStackID"))
			return
		}

		stack, err := h.techStackRepo.FindByID(stackID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tech stack", err))
			return
		}
		if stack == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tech stack not found"))
			return
		}

		if err := h.techStackRepo.Delete(stackID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tech stack", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tech stack deleted successfully",
		})
	}
}
