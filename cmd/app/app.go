package app

import (
	"github.com/rs/zerolog"

	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/database"
	"github.com/teamMongle/Mongle-Server/internal/repository"
	"github.com/teamMongle/Mongle-Server/internal/service"
	"github.com/teamMongle/Mongle-Server/internal/storage"
)

// App wires the store, the blob storage and the service layer. Everything is
// constructed here and injected; nothing reads ambient global state.
func App(cfg *config.Config, logger zerolog.Logger) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		logger.Warn().Err(err).Msg("failed to apply migrations")
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize MinIO")
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
