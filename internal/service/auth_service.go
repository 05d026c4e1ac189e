package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

type AuthService interface {
	CheckUsername(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, params RegisterParams) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type RegisterParams struct {
	Username string
	Password string
	Name     string
	Age      int
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) CheckUsername(ctx context.Context, username string) (bool, error) {
	return s.userRepo.UsernameExists(ctx, username)
}

// Register relies on the database unique constraint for username uniqueness;
// a duplicate surfaces as ErrConflict from the repository.
func (s *authService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	user := &models.User{
		Username: params.Username,
		Name:     params.Name,
		Age:      params.Age,
	}

	err := s.userRepo.CreateUser(ctx, user, params.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues an access token whose subject is
// the user id. Unknown username and wrong password come back as the same
// ErrUnauthorized from the repository.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return token, user, nil
}

func (s *authService) generateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
