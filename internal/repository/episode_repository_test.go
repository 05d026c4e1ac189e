package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
)

func TestEpisodeRepository_Add(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEpisodeRepository(sqlxDB)
	ctx := context.Background()

	t.Run("locks the work and assigns the next number", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM notes WHERE id = $1 FOR UPDATE`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`INSERT INTO work_episodes (work_id, episode_number, content, created_at) SELECT $1, COALESCE(MAX(episode_number), 0) + 1, $2, NOW() FROM work_episodes WHERE work_id = $1 RETURNING id, episode_number, created_at`).
			WithArgs(int64(7), "episode text").
			WillReturnRows(sqlmock.NewRows([]string{"id", "episode_number", "created_at"}).
				AddRow(int64(3), 3, createdAt))
		mock.ExpectCommit()

		episode, err := repo.Add(ctx, 7, "episode text")

		assert.NoError(t, err)
		assert.Equal(t, 3, episode.EpisodeNumber)
		assert.Equal(t, createdAt, episode.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing work maps to NotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM notes WHERE id = $1 FOR UPDATE`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		episode, err := repo.Add(ctx, 99, "episode text")

		assert.Nil(t, episode)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestEpisodeRepository_GetCommentsByEpisodeID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEpisodeRepository(sqlxDB)
	ctx := context.Background()

	first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT c.id AS comment_id, u.nickname AS author_nickname, c.content, c.created_at FROM comments c JOIN users u ON c.user_id = u.id WHERE c.episode_id = $1 ORDER BY c.created_at ASC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "author_nickname", "content", "created_at"}).
			AddRow(int64(1), "reader1", "great!", first).
			AddRow(int64(2), "reader2", "more please", second))

	comments, err := repo.GetCommentsByEpisodeID(ctx, 3)

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.True(t, !comments[1].CreatedAt.Before(comments[0].CreatedAt))
	assert.Equal(t, "reader1", comments[0].AuthorNickname)
}
