package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/models"
)

type engagementRepository struct {
	db *sqlx.DB
}

func NewEngagementRepository(db *sqlx.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// IncrementViews raises the counter unconditionally. A missing work is not an
// error here: the zero-row update is followed by a load that reports NotFound.
func (r *engagementRepository) IncrementViews(ctx context.Context, workID int64) error {
	query := `UPDATE notes SET views = views + 1 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, workID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	return nil
}

// Like raises the counter and records membership in one transaction. The
// counter is a plain re-increment on every call; the membership row only
// feeds the liked-works list and never gates the counter.
func (r *engagementRepository) Like(ctx context.Context, workID, userID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE notes SET likes = likes + 1 WHERE id = $1`, workID)
	if err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("work: %w", apperrors.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO likes (user_id, note_id) VALUES ($1, $2) ON CONFLICT (user_id, note_id) DO NOTHING`, userID, workID)
	if err != nil {
		return fmt.Errorf("failed to record like: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit like: %w", err)
	}

	return nil
}

func (r *engagementRepository) RecordView(ctx context.Context, userID, workID int64) error {
	query := `INSERT INTO views (user_id, note_id, viewed_at) VALUES ($1, $2, NOW())`

	_, err := r.db.ExecContext(ctx, query, userID, workID)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}

	return nil
}

func (r *engagementRepository) GetRecentViews(ctx context.Context, userID int64, limit int) ([]models.WorkSummary, error) {
	var works []models.WorkSummary

	query := `SELECT n.id, n.title, n.image, u.name AS author_name FROM views v JOIN notes n ON v.note_id = n.id JOIN users u ON n.author_id = u.id WHERE v.user_id = $1 ORDER BY v.viewed_at DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &works, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent views: %w", err)
	}

	return works, nil
}

func (r *engagementRepository) GetLikedWorks(ctx context.Context, userID int64) ([]models.WorkSummary, error) {
	var works []models.WorkSummary

	query := `SELECT n.id, n.title, n.image, u.name AS author_name FROM likes l JOIN notes n ON l.note_id = n.id JOIN users u ON n.author_id = u.id WHERE l.user_id = $1`

	err := r.db.SelectContext(ctx, &works, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked works: %w", err)
	}

	return works, nil
}
