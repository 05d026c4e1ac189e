package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/database"
	"github.com/teamMongle/Mongle-Server/internal/service"
)

type Handlers struct {
	Services *service.Service
	DB       *database.DB
	Cfg      *config.Config
	Validate *validator.Validate
	Logger   zerolog.Logger
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config, logger zerolog.Logger) *Handlers {
	return &Handlers{
		Services: services,
		DB:       db,
		Cfg:      cfg,
		Validate: validator.New(),
		Logger:   logger,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		h.Logger.Error().Err(err).Msg("health check failed")
		WriteError(w, "database unavailable", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
