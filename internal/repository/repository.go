package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/teamMongle/Mongle-Server/internal/models"
)

type UserRepository interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type WorkRepository interface {
	Create(ctx context.Context, work *models.Work) error
	GetByID(ctx context.Context, workID int64) (*models.Work, error)
	GetAll(ctx context.Context) ([]models.Work, error)
	GetTopByLikes(ctx context.Context, limit int) ([]models.Work, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Work, error)
	UpdateOwned(ctx context.Context, workID, authorID int64, params UpdateWorkParams) error
	Delete(ctx context.Context, workID int64) error
}

type EpisodeRepository interface {
	Add(ctx context.Context, workID int64, content string) (*models.Episode, error)
	GetByWorkID(ctx context.Context, workID int64) ([]models.Episode, error)
	GetCommentsByEpisodeID(ctx context.Context, episodeID int64) ([]models.Comment, error)
}

type EngagementRepository interface {
	IncrementViews(ctx context.Context, workID int64) error
	Like(ctx context.Context, workID, userID int64) error
	RecordView(ctx context.Context, userID, workID int64) error
	GetRecentViews(ctx context.Context, userID int64, limit int) ([]models.WorkSummary, error)
	GetLikedWorks(ctx context.Context, userID int64) ([]models.WorkSummary, error)
}

type Repository struct {
	User       UserRepository
	Work       WorkRepository
	Episode    EpisodeRepository
	Engagement EngagementRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Work:       NewWorkRepository(db),
		Episode:    NewEpisodeRepository(db),
		Engagement: NewEngagementRepository(db),
	}
}
