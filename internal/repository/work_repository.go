package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/models"
)

type workRepository struct {
	db *sqlx.DB
}

// UpdateWorkParams replaces all five mutable fields wholesale; partial update
// is not supported on this path.
type UpdateWorkParams struct {
	Title       string
	Content     string
	Category    string
	Image       string
	Description string
}

func NewWorkRepository(db *sqlx.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(ctx context.Context, work *models.Work) error {
	query := `INSERT INTO notes (title, content, category, image, description, author_id, author_name) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.db.GetContext(ctx, &work.ID, query,
		work.Title,
		work.Content,
		work.Category,
		work.Image,
		work.Description,
		work.AuthorID,
		work.AuthorName,
	)
	if err != nil {
		return fmt.Errorf("failed to create work: %w", err)
	}

	return nil
}

func (r *workRepository) GetByID(ctx context.Context, workID int64) (*models.Work, error) {
	var work models.Work

	query := `SELECT * FROM notes WHERE id = $1`

	err := r.db.GetContext(ctx, &work, query, workID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get work: %w", err)
	}

	return &work, nil
}

func (r *workRepository) GetAll(ctx context.Context) ([]models.Work, error) {
	var works []models.Work

	query := `SELECT * FROM notes`

	err := r.db.SelectContext(ctx, &works, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}

	return works, nil
}

func (r *workRepository) GetTopByLikes(ctx context.Context, limit int) ([]models.Work, error) {
	var works []models.Work

	query := `SELECT * FROM notes ORDER BY likes DESC LIMIT $1`

	err := r.db.SelectContext(ctx, &works, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top works: %w", err)
	}

	return works, nil
}

func (r *workRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Work, error) {
	var works []models.Work

	query := `SELECT * FROM notes WHERE author_id = $1`

	err := r.db.SelectContext(ctx, &works, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works by author: %w", err)
	}

	return works, nil
}

// UpdateOwned matches on (id, author_id) in one statement, so a missing work
// and a work owned by someone else are indistinguishable here: both come back
// as ErrForbidden.
func (r *workRepository) UpdateOwned(ctx context.Context, workID, authorID int64, params UpdateWorkParams) error {
	query := `UPDATE notes SET title = $1, content = $2, category = $3, image = $4, description = $5 WHERE id = $6 AND author_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		params.Title,
		params.Content,
		params.Category,
		params.Image,
		params.Description,
		workID,
		authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update work: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("work: %w", apperrors.ErrForbidden)
	}

	return nil
}

func (r *workRepository) Delete(ctx context.Context, workID int64) error {
	query := `DELETE FROM notes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, workID)
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("work: %w", apperrors.ErrNotFound)
	}

	return nil
}
