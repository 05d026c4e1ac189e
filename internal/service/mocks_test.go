package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, params repository.UpdateProfileParams) error {
	args := m.Called(ctx, userID, params)
	return args.Error(0)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) Create(ctx context.Context, work *models.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWorkRepository) GetByID(ctx context.Context, workID int64) (*models.Work, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Work), args.Error(1)
}

func (m *MockWorkRepository) GetAll(ctx context.Context) ([]models.Work, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Work), args.Error(1)
}

func (m *MockWorkRepository) GetTopByLikes(ctx context.Context, limit int) ([]models.Work, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Work), args.Error(1)
}

func (m *MockWorkRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Work, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Work), args.Error(1)
}

func (m *MockWorkRepository) UpdateOwned(ctx context.Context, workID, authorID int64, params repository.UpdateWorkParams) error {
	args := m.Called(ctx, workID, authorID, params)
	return args.Error(0)
}

func (m *MockWorkRepository) Delete(ctx context.Context, workID int64) error {
	args := m.Called(ctx, workID)
	return args.Error(0)
}

type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) Add(ctx context.Context, workID int64, content string) (*models.Episode, error) {
	args := m.Called(ctx, workID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetByWorkID(ctx context.Context, workID int64) ([]models.Episode, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetCommentsByEpisodeID(ctx context.Context, episodeID int64) ([]models.Comment, error) {
	args := m.Called(ctx, episodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) IncrementViews(ctx context.Context, workID int64) error {
	args := m.Called(ctx, workID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Like(ctx context.Context, workID, userID int64) error {
	args := m.Called(ctx, workID, userID)
	return args.Error(0)
}

func (m *MockEngagementRepository) RecordView(ctx context.Context, userID, workID int64) error {
	args := m.Called(ctx, userID, workID)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetRecentViews(ctx context.Context, userID int64, limit int) ([]models.WorkSummary, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkSummary), args.Error(1)
}

func (m *MockEngagementRepository) GetLikedWorks(ctx context.Context, userID int64) ([]models.WorkSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkSummary), args.Error(1)
}
