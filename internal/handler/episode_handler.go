package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type AddEpisodeRequest struct {
	WorkID  int64  `json:"workId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type AddEpisodeResponse struct {
	EpisodeNumber int       `json:"episodeNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (h *Handlers) AddEpisode(w http.ResponseWriter, r *http.Request) {
	var req AddEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "workId and content are required", http.StatusBadRequest)
		return
	}

	episode, err := h.Services.Episode.Add(r.Context(), req.WorkID, req.Content)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, AddEpisodeResponse{
		EpisodeNumber: episode.EpisodeNumber,
		CreatedAt:     episode.CreatedAt,
	}, http.StatusCreated)
}
