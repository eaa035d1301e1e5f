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

type contactHandler struct {
	responder         Responder
	logger            zerolog.Logger
	contactMethodRepo *database.ContactMethodRepo
}

func newContactHandler(contactMethodRepo *database.ContactMethodRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		contactMethodRepo: contactMethodRepo,
	}
}

func (h contactHandler) listContactMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ContactMethodFilter{Status: r.URL.Query().Get("status")}
		if filter.Status == "" && r.URL.Query().Get("active") == "true" {
			filter.Status = "active"
		}

		methods, err := h.contactMethodRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact methods", err))
			return
		}
		if methods == nil {
			methods = []*models.ContactMethod{}
		}

		h.responder.WriteJSON(w, methods)
	}
}

func (h contactHandler) getContactMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methodID, err := uuid.Parse(chi.URLParam(r, "contactMethodID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactMethodID"))
			return
		}

		method, err := h.contactMethodRepo.FindByID(methodID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact method", err))
			return
		}
		if method == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact method not found"))
			return
		}

		h.responder.WriteJSON(w, method)
	}
}

func (h contactHandler) createContactMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactMethodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact method request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Label == nil || *req.Label == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "label", "label is required"))
			return
		}
		if req.Value == nil || *req.Value == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "value", "value is required"))
			return
		}

		method := models.ContactMethod{ID: uuid.New(), Status: "active"}
		req.applyScalars(&method)

		if err := h.contactMethodRepo.Add(&method); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact method", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, method)
	}
}

func (h contactHandler) updateContactMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methodID, err := uuid.Parse(chi.URLParam(r, "contactMethodID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactMethodID"))
			return
		}

		method, err := h.contactMethodRepo.FindByID(methodID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact method", err))
			return
		}
		if method == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact method not found"))
			return
		}

		var req ContactMethodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact method request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.applyScalars(method)

		if err := h.contactMethodRepo.Update(method); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact method", err))
			return
		}

		h.responder.WriteJSON(w, method)
	}
}

func (h contactHandler) deleteContactMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methodID, err := uuid.Parse(chi.URLParam(r, "contactMethodID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactMethodID"))
			return
		}

		method, err := h.contactMethodRepo.FindByID(methodID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact method", err))
			return
		}
		if method == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact method not found"))
			return
		}

		if err := h.contactMethodRepo.Delete(methodID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact method", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact method deleted successfully",
		})
	}
}
