package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/errs"
	"github.com/sinascience/portfolio-backend/models"
)

type settingsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.SettingRepo
}

func newSettingsHandler(settingRepo *database.SettingRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
	}
}

// listSettings returns every setting with its decoded value.
func (h settingsHandler) listSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "settings", err))
			return
		}

		out := make(map[string]any, len(settings))
		for _, s := range settings {
			out[s.Key] = map[string]any{
				"value": s.DecodedValue(),
				"type":  s.Type,
			}
		}

		h.responder.WriteJSON(w, out)
	}
}

// upsertSettings accepts a { key: { value, type } } map and writes each
// entry. Invalid entries fail the whole request before anything is written.
func (h settingsHandler) upsertSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req map[string]SettingValueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode settings request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(req) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no settings provided"))
			return
		}

		type pending struct {
			key, value, settingType string
		}
		encoded := make([]pending, 0, len(req))
		for key, entry := range req {
			settingType := entry.Type
			if settingType == "" {
				settingType = models.SettingTypeString
			}
			value, err := models.EncodeSettingValue(entry.Value, settingType)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid setting value", key, err.Error()))
				return
			}
			encoded = append(encoded, pending{key: key, value: value, settingType: settingType})
		}

		for _, p := range encoded {
			if err := h.settingRepo.Upsert(p.key, p.value, p.settingType); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("upsert", "setting", err))
				return
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "settings saved",
		})
	}
}

func (h settingsHandler) deleteSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing setting key"))
			return
		}

		setting, err := h.settingRepo.FindByKey(key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "setting", err))
			return
		}
		if setting == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("setting not found"))
			return
		}

		if err := h.settingRepo.Delete(key); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "setting", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "setting deleted successfully",
		})
	}
}

// getPersonalInfo merges the stored reserved-key subset over hard-coded
// defaults so the public profile never has a missing field.
func (h settingsHandler) getPersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingRepo.FindByKeys(models.PersonalInfoKeys())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "personal info", err))
			return
		}

		h.responder.WriteJSON(w, models.MergePersonalInfo(settings))
	}
}

// upsertPersonalInfo is the same write path as upsertSettings; the reserved
// keys only matter on read.
func (h settingsHandler) upsertPersonalInfo() http.HandlerFunc {
	return h.upsertSettings()
}
