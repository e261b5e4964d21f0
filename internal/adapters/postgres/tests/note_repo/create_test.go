package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/adapters/postgres"
	"notehub/internal/domain/entities"
	"notehub/pkg/logger"
)

func TestNoteRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	inputNote := &entities.Note{
		OwnerID: "owner-123",
		Title:   "shopping",
		Content: "milk, eggs",
	}

	expectedNote := entities.Note{
		ID:        "generated-note-uuid",
		OwnerID:   inputNote.OwnerID,
		Title:     inputNote.Title,
		Content:   inputNote.Content,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное создание заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(inputNote.OwnerID, inputNote.Title, inputNote.Content).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "owner_id", "title", "content", "created_at"}).
					AddRow(expectedNote.ID, expectedNote.OwnerID, expectedNote.Title, expectedNote.Content, expectedNote.CreatedAt),
			)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, expectedNote.ID, created.ID)
		assert.Equal(t, expectedNote.OwnerID, created.OwnerID)
		assert.Equal(t, expectedNote.Title, created.Title)
		assert.Equal(t, expectedNote.Content, created.Content)
		assert.Equal(t, expectedNote.CreatedAt, created.CreatedAt)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Создание заметки с пустым содержимым", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		emptyNote := &entities.Note{
			OwnerID: "owner-123",
			Title:   "just a title",
			Content: "",
		}

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(emptyNote.OwnerID, emptyNote.Title, emptyNote.Content).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "owner_id", "title", "content", "created_at"}).
					AddRow("another-uuid", emptyNote.OwnerID, emptyNote.Title, "", expectedNote.CreatedAt),
			)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, emptyNote)

		require.NoError(t, err)
		assert.Empty(t, created.Content)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка при создании заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(inputNote.OwnerID, inputNote.Title, inputNote.Content).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create note")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
