package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/adapters/postgres"
	"notehub/internal/domain/entities"
	"notehub/pkg/logger"
)

func TestNoteRepository_Update(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	noteID := "note-456"
	ownerID := "owner-123"
	newTitle := "updated title"
	newContent := "updated content"
	createdAt := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	t.Run("Успешное обновление заметки владельцем", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs(newTitle, newContent, noteID, ownerID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "owner_id", "title", "content", "created_at"}).
					AddRow(noteID, ownerID, newTitle, newContent, createdAt),
			)

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, newTitle, newContent)

		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
		assert.Equal(t, newContent, updated.Content)
		assert.Equal(t, createdAt, updated.CreatedAt)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Заметка не существует - ноль строк и пустая проверка существования", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs(newTitle, newContent, noteID, ownerID).
			WillReturnError(pgx.ErrNoRows)

		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs(noteID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, newTitle, newContent)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Заметка принадлежит другому пользователю", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs(newTitle, newContent, noteID, ownerID).
			WillReturnError(pgx.ErrNoRows)

		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs(noteID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, newTitle, newContent)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrNoteAccessDenied)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Некорректный идентификатор - заметка не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs(newTitle, newContent, "abc", ownerID).
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, "abc", ownerID, newTitle, newContent)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка базы данных при обновлении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs(newTitle, newContent, noteID, ownerID).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, newTitle, newContent)

		assert.Nil(t, updated)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update note")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
