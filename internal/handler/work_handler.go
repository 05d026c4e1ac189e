package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/teamMongle/Mongle-Server/internal/middleware"
	"github.com/teamMongle/Mongle-Server/internal/repository"
	"github.com/teamMongle/Mongle-Server/internal/service"
)

type CreateWorkRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type UpdateWorkRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func workIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handlers) ListWorks(w http.ResponseWriter, r *http.Request) {
	works, err := h.Services.Work.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, works, http.StatusOK)
}

func (h *Handlers) CreateWork(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req CreateWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.Services.Work.Create(r.Context(), actorID, service.CreateWorkParams{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "work created"}, http.StatusCreated)
}

func (h *Handlers) WorkDetail(w http.ResponseWriter, r *http.Request) {
	workID, err := workIDFromRequest(r)
	if err != nil {
		WriteError(w, "invalid work id", http.StatusBadRequest)
		return
	}

	// The detail read is public; a valid token only makes the view count
	// toward the viewer's recent-views list.
	var viewerID *int64
	if actorID, ok := middleware.UserIDFromContext(r.Context()); ok {
		viewerID = &actorID
	}

	detail, err := h.Services.Work.Detail(r.Context(), workID, viewerID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, detail, http.StatusOK)
}

func (h *Handlers) UpdateWork(w http.ResponseWriter, r *http.Request) {
	workID, err := workIDFromRequest(r)
	if err != nil {
		WriteError(w, "invalid work id", http.StatusBadRequest)
		return
	}

	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = h.Services.Work.Update(r.Context(), workID, actorID, repository.UpdateWorkParams{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "work updated"}, http.StatusOK)
}

func (h *Handlers) DeleteWork(w http.ResponseWriter, r *http.Request) {
	workID, err := workIDFromRequest(r)
	if err != nil {
		WriteError(w, "invalid work id", http.StatusBadRequest)
		return
	}

	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.Services.Work.Delete(r.Context(), workID, actorID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "work deleted"}, http.StatusOK)
}

func (h *Handlers) LikeWork(w http.ResponseWriter, r *http.Request) {
	workID, err := workIDFromRequest(r)
	if err != nil {
		WriteError(w, "invalid work id", http.StatusBadRequest)
		return
	}

	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.Services.Work.Like(r.Context(), workID, actorID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "like added"}, http.StatusOK)
}

func (h *Handlers) Best9(w http.ResponseWriter, r *http.Request) {
	works, err := h.Services.Work.Best(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, works, http.StatusOK)
}

func (h *Handlers) WorksByAuthor(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	works, err := h.Services.Work.WorksByAuthor(r.Context(), name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, works, http.StatusOK)
}
