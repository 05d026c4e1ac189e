package service

import (
	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/repository"
	"github.com/teamMongle/Mongle-Server/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Work    WorkService
	Episode EpisodeService
	Upload  UploadService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, cfg),
		User:    NewUserService(repo.User, repo.Work, repo.Engagement),
		Work:    NewWorkService(repo.Work, repo.User, repo.Episode, repo.Engagement),
		Episode: NewEpisodeService(repo.Episode),
		Upload:  NewUploadService(store, cfg),
	}
}
