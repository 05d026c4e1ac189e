package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
	"github.com/teamMongle/Mongle-Server/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CheckUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, params service.RegisterParams) (*models.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

type MockWorkService struct {
	mock.Mock
}

func (m *MockWorkService) Create(ctx context.Context, authorID int64, params service.CreateWorkParams) (*models.Work, error) {
	args := m.Called(ctx, authorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Work), args.Error(1)
}

func (m *MockWorkService) List(ctx context.Context) ([]models.Work, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Work), args.Error(1)
}

func (m *MockWorkService) Best(ctx context.Context) ([]models.Work, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Work), args.Error(1)
}

func (m *MockWorkService) Detail(ctx context.Context, workID int64, viewerID *int64) (*models.WorkDetail, error) {
	args := m.Called(ctx, workID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkDetail), args.Error(1)
}

func (m *MockWorkService) Update(ctx context.Context, workID, actorID int64, params repository.UpdateWorkParams) error {
	args := m.Called(ctx, workID, actorID, params)
	return args.Error(0)
}

func (m *MockWorkService) Delete(ctx context.Context, workID, actorID int64) error {
	args := m.Called(ctx, workID, actorID)
	return args.Error(0)
}

func (m *MockWorkService) Like(ctx context.Context, workID, actorID int64) error {
	args := m.Called(ctx, workID, actorID)
	return args.Error(0)
}

func (m *MockWorkService) WorksByAuthor(ctx context.Context, name string) (*models.AuthorWorks, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthorWorks), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int64, params repository.UpdateProfileParams) error {
	args := m.Called(ctx, userID, params)
	return args.Error(0)
}

func (m *MockUserService) Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) Add(ctx context.Context, workID int64, content string) (*models.Episode, error) {
	args := m.Called(ctx, workID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) Fetch(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, objectName)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}
