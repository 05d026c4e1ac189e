package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/models"
)

// pqUniqueViolation is the Postgres error code for a unique-constraint
// violation. Username uniqueness is enforced by the constraint itself, not by
// a pre-check, so a race between two registrations still resolves correctly.
const pqUniqueViolation = "23505"

type userRepository struct {
	db *sqlx.DB
}

// UpdateProfileParams carries a partial profile update. String fields are
// applied only when non-empty; Age is a pointer so an explicit zero is
// distinguishable from an absent field.
type UpdateProfileParams struct {
	Username     string
	Name         string
	Age          *int
	ProfileImage string
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashedPassword)

	query := `INSERT INTO users (username, password_hash, name, age) VALUES ($1, $2, $3, $4) RETURNING id`

	err = r.db.GetContext(ctx, &user.ID, query, user.Username, user.PasswordHash, user.Name, user.Age)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE name = $1`

	err := r.db.GetContext(ctx, &user, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("author: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return &user, nil
}

// UpdateProfile applies only the provided fields. Absent fields are left
// untouched rather than overwritten with defaults.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) error {
	updates := make([]string, 0, 4)
	values := make([]interface{}, 0, 5)

	if params.Username != "" {
		values = append(values, params.Username)
		updates = append(updates, fmt.Sprintf("username = $%d", len(values)))
	}
	if params.Name != "" {
		values = append(values, params.Name)
		updates = append(updates, fmt.Sprintf("name = $%d", len(values)))
	}
	if params.Age != nil {
		values = append(values, *params.Age)
		updates = append(updates, fmt.Sprintf("age = $%d", len(values)))
	}
	if params.ProfileImage != "" {
		values = append(values, params.ProfileImage)
		updates = append(updates, fmt.Sprintf("profile_image = $%d", len(values)))
	}

	if len(updates) == 0 {
		return nil
	}

	values = append(values, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(updates, ", "), len(values))

	result, err := r.db.ExecContext(ctx, query, values...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user: %w", apperrors.ErrNotFound)
	}

	return nil
}

// VerifyPassword returns the same error for an unknown username and a wrong
// password so the login endpoint cannot be used for username enumeration.
func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
