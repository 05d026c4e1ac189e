package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:        "test-secret",
		AccessTokenDuration: 2 * time.Hour,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token whose subject is the user id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testConfig())

		userRepo.On("VerifyPassword", ctx, "alice", "pw1").
			Return(&models.User{ID: 7, Username: "alice", Name: "Alice", Age: 30}, nil)

		tokenString, user, err := svc.Login(ctx, "alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)

		subject, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, "7", subject)
	})

	t.Run("bad credentials pass the generic error through", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testConfig())

		userRepo.On("VerifyPassword", ctx, "alice", "wrong").
			Return(nil, apperrors.ErrUnauthorized)

		_, _, err := svc.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	userRepo.On("CreateUser", ctx, &models.User{Username: "alice", Name: "Alice", Age: 30}, "pw1").
		Return(nil)

	user, err := svc.Register(ctx, RegisterParams{Username: "alice", Password: "pw1", Name: "Alice", Age: 30})

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	userRepo.AssertExpectations(t)
}
