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

type episodeRepository struct {
	db *sqlx.DB
}

func NewEpisodeRepository(db *sqlx.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

// Add inserts the next episode for a work. The parent row is locked for the
// duration of the transaction so concurrent inserts for the same work cannot
// compute the same episode number; the UNIQUE (work_id, episode_number)
// constraint backstops the invariant.
func (r *episodeRepository) Add(ctx context.Context, workID int64, content string) (*models.Episode, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.GetContext(ctx, &lockedID, `SELECT id FROM notes WHERE id = $1 FOR UPDATE`, workID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock work: %w", err)
	}

	episode := models.Episode{WorkID: workID, Content: content}

	query := `INSERT INTO work_episodes (work_id, episode_number, content, created_at) SELECT $1, COALESCE(MAX(episode_number), 0) + 1, $2, NOW() FROM work_episodes WHERE work_id = $1 RETURNING id, episode_number, created_at`

	err = tx.QueryRowxContext(ctx, query, workID, content).Scan(&episode.ID, &episode.EpisodeNumber, &episode.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert episode: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit episode: %w", err)
	}

	return &episode, nil
}

func (r *episodeRepository) GetByWorkID(ctx context.Context, workID int64) ([]models.Episode, error) {
	var episodes []models.Episode

	query := `SELECT * FROM work_episodes WHERE work_id = $1 ORDER BY episode_number`

	err := r.db.SelectContext(ctx, &episodes, query, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}

func (r *episodeRepository) GetCommentsByEpisodeID(ctx context.Context, episodeID int64) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT c.id AS comment_id, u.nickname AS author_nickname, c.content, c.created_at FROM comments c JOIN users u ON c.user_id = u.id WHERE c.episode_id = $1 ORDER BY c.created_at ASC`

	err := r.db.SelectContext(ctx, &comments, query, episodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
