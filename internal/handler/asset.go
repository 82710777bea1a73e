package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
)

// multipartOverhead is the room left for form boundaries and headers on top
// of the file size limit.
const multipartOverhead = 1 << 20

type AssetHandler struct {
	assetService *service.AssetService
	maxBytes     int64
}

func NewAssetHandler(assetService *service.AssetService, maxBytes int64) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		maxBytes:     maxBytes,
	}
}

// Upload accepts a multipart form with the image in the "file" field.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxBytes + multipartOverhead); err != nil {
		response.Error(w, r, apperr.Wrap(apperr.ValidationFailed, "Failed to parse form", err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			slog.Error("failed to remove multipart files", "error", err)
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.Error(w, r, apperr.Validation("File is required.", map[string]string{"file": "is required"}))
			return
		}
		response.Error(w, r, apperr.Wrap(apperr.ValidationFailed, "Failed to read file", err))
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Error("failed to close file", "error", closeErr)
		}
	}()

	asset, err := h.assetService.Upload(r.Context(), userID(r), header)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "File uploaded successfully.", asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assetService.Delete(r.Context(), userID(r), r.PathValue("key")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "File deleted successfully.", nil)
}
