package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/service"
)

type CheckUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

type CheckUsernameResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

func (h *Handlers) CheckUsername(w http.ResponseWriter, r *http.Request) {
	var req CheckUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "username is required", http.StatusBadRequest)
		return
	}

	exists, err := h.Services.Auth.CheckUsername(r.Context(), req.Username)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if exists {
		WriteSuccess(w, CheckUsernameResponse{Exists: true, Message: "username already taken"}, http.StatusBadRequest)
		return
	}

	WriteSuccess(w, CheckUsernameResponse{Exists: false, Message: "username is available"}, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "username, password, name and age are required", http.StatusBadRequest)
		return
	}

	_, err := h.Services.Auth.Register(r.Context(), service.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "registration successful"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, user, err := h.Services.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// One generic message for unknown username and wrong password.
		if errors.Is(err, apperrors.ErrUnauthorized) {
			WriteError(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		h.writeServiceError(w, err)
		return
	}

	WriteSuccess(w, LoginResponse{Token: token, Name: user.Name, Age: user.Age}, http.StatusOK)
}
