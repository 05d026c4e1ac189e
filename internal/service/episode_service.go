package service

import (
	"context"

	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

type EpisodeService interface {
	Add(ctx context.Context, workID int64, content string) (*models.Episode, error)
}

type episodeService struct {
	episodeRepo repository.EpisodeRepository
}

func NewEpisodeService(episodeRepo repository.EpisodeRepository) EpisodeService {
	return &episodeService{episodeRepo: episodeRepo}
}

func (s *episodeService) Add(ctx context.Context, workID int64, content string) (*models.Episode, error) {
	return s.episodeRepo.Add(ctx, workID, content)
}
