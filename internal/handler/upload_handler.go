package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		WriteError(w, "file name is missing", http.StatusBadRequest)
		return
	}

	url, err := h.Services.Upload.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, UploadResponse{URL: url}, http.StatusOK)
}

func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	objectName := mux.Vars(r)["filename"]

	reader, contentType, err := h.Services.Upload.Fetch(r.Context(), objectName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, reader); err != nil {
		h.Logger.Error().Err(err).Str("object", objectName).Msg("failed to stream upload")
	}
}
