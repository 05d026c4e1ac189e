package test

import (
	"github.com/rs/zerolog"

	"github.com/teamMongle/Mongle-Server/internal/config"
	handlers "github.com/teamMongle/Mongle-Server/internal/handler"
	"github.com/teamMongle/Mongle-Server/internal/service"
)

type testServices struct {
	auth    *MockAuthService
	work    *MockWorkService
	user    *MockUserService
	episode *MockEpisodeService
	upload  *MockUploadService
}

func newTestHandlers() (*handlers.Handlers, *testServices) {
	mocks := &testServices{
		auth:    new(MockAuthService),
		work:    new(MockWorkService),
		user:    new(MockUserService),
		episode: new(MockEpisodeService),
		upload:  new(MockUploadService),
	}

	services := &service.Service{
		Auth:    mocks.auth,
		Work:    mocks.work,
		User:    mocks.user,
		Episode: mocks.episode,
		Upload:  mocks.upload,
	}

	cfg := &config.Config{MaxUploadSize: 10 * 1024 * 1024, PublicBaseURL: "http://localhost:8080"}

	return handlers.NewHandlers(services, nil, cfg, zerolog.Nop()), mocks
}
