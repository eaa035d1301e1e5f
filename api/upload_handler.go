package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinascience/portfolio-backend/errs"
	"github.com/sinascience/portfolio-backend/services"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   services.ObjectStorage
}

func newUploadHandler(storage services.ObjectStorage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// uploadImage accepts a multipart form with a `file` field, validates it
// against the image allow-list and size cap before anything touches the
// bucket, and returns the public URL of the stored object.
// @Summary Upload image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (max 5 MB)"
// @Param folder formData string false "Object key namespace, defaults to blog-images"
// @Success 200 {object} UploadResponse "Uploaded file info"
// @Failure 413 {object} map[string]any "File exceeds size limit"
// @Failure 415 {object} map[string]any "Unsupported media type"
// @Router /upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cap the parse buffer slightly above the allowed file size so the
		// size check below sees the real length.
		if err := r.ParseMultipartForm(services.MaxUploadSize + 1<<20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "file", "a file field is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if err := services.ValidateImageUpload(contentType, header.Size); err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedImageType):
				h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(contentType, services.AllowedImageTypes()))
			case errors.Is(err, services.ErrImageTooLarge):
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(services.MaxUploadSize))
			default:
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			}
			return
		}

		folder := r.FormValue("folder")
		if folder == "" {
			folder = "blog-images"
		}

		key := services.ObjectKey(folder, header.Filename, contentType)
		imageURL, err := h.storage.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload image")
			h.responder.WriteError(w, errs.NewInternalError("failed to store uploaded file"))
			return
		}

		h.responder.WriteJSON(w, UploadResponse{
			ImageURL:     imageURL,
			Filename:     key,
			OriginalName: header.Filename,
			Size:         header.Size,
			Type:         contentType,
		})
	}
}

// deleteImage removes a previously uploaded object, addressed by its public
// URL via the `url` query parameter.
func (h uploadHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicURL := r.URL.Query().Get("url")
		if publicURL == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("missing required field", "url", "a url query parameter is required"))
			return
		}

		if err := h.storage.Delete(r.Context(), publicURL); err != nil {
			if errors.Is(err, services.ErrMalformedObjectURL) {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid field", "url", err.Error()))
				return
			}
			h.logger.Error().Err(err).Str("url", publicURL).Msg("Failed to delete image")
			h.responder.WriteError(w, errs.NewInternalError("failed to delete stored file"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "file deleted successfully",
		})
	}
}
