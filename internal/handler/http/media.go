package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cantikstore/storefront/internal/service"
)

// maxUploadBytes bounds one upload request; product photos are a few MB at
// most after client-side selection.
const maxUploadBytes = 32 << 20

// MediaHandler handles product image uploads.
type MediaHandler struct {
	service *service.MediaService
	logger  *slog.Logger
}

// NewMediaHandler creates a new media HTTP handler.
func NewMediaHandler(svc *service.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		service: svc,
		logger:  logger,
	}
}

// UploadImagesResponse carries the stored image URLs in input order.
type UploadImagesResponse struct {
	URLs []string `json:"urls"`
}

// UploadImages handles POST /api/v1/admin/images as multipart form data
// with one or more files under the "images" field.
func (h *MediaHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeBadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	form := r.MultipartForm
	if form == nil || len(form.File["images"]) == 0 {
		writeBadRequest(w, "at least one file is required under the images field")
		return
	}

	files := make([]service.UploadFile, 0, len(form.File["images"]))
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			writeBadRequest(w, "open uploaded file: "+err.Error())
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeBadRequest(w, "read uploaded file: "+err.Error())
			return
		}

		files = append(files, service.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	urls, err := h.service.UploadImages(r.Context(), files)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: UploadImagesResponse{URLs: urls}})
}
