package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jyokubov/portfolio/service"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadHandler forwards a single multipart image to the configured image store.
// Auth is enforced by the route middleware.
type UploadHandler struct {
	Images   service.ImageStore // nil when no backend is configured
	MaxBytes int64              // ceiling on the file itself
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.Images == nil {
		respondError(w, http.StatusInternalServerError, "Upload is not configured")
		return
	}

	// Bound the whole request a little above the file ceiling to leave room
	// for the multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+1<<20)
	if err := r.ParseMultipartForm(h.MaxBytes + 1<<20); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		respondError(w, http.StatusBadRequest, "Only JPEG, PNG, WebP, and GIF images are allowed")
		return
	}
	if header.Size > h.MaxBytes {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("File size must be under %dMB", h.MaxBytes/(1024*1024)))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	result, err := h.Images.Upload(r.Context(), header.Filename, contentType, data)
	if err != nil {
		log.Printf("upload: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
