package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teamMongle/Mongle-Server/internal/middleware"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

// UpdateProfileRequest is a partial patch: empty strings mean "leave alone".
// Age is a pointer so an explicit 0 is applied while an absent field is not.
type UpdateProfileRequest struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	Age          *int   `json:"age"`
	ProfileImage string `json:"profileImage"`
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.Services.User.UpdateProfile(r.Context(), actorID, repository.UpdateProfileParams{
		Username:     req.Username,
		Name:         req.Name,
		Age:          req.Age,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "profile updated"}, http.StatusOK)
}

func (h *Handlers) MyPage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	dashboard, err := h.Services.User.Dashboard(r.Context(), actorID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, dashboard, http.StatusOK)
}
