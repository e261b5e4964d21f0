package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/repositories"
	"notehub/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку. Идентификатор и created_at генерирует БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", note.OwnerID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, owner_id, title, content, created_at`,
		note.OwnerID, note.Title, note.Content,
	).Scan(&created.ID, &created.OwnerID, &created.Title, &created.Content, &created.CreatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// ListByOwner возвращает все заметки владельца, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByOwner"))
	log.Debug(ctx, "listing notes", zap.String("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, title, content, created_at
         FROM notes
         WHERE owner_id = $1
         ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// GetByID возвращает заметку по идентификатору без фильтра по владельцу.
// Проверка владения выполняется вызывающей стороной после аутентификации.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, content, created_at
         FROM notes
         WHERE id = $1`,
		noteID,
	).Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedIDErr(err) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// Update заменяет заголовок и содержимое условной записью по (id, owner_id),
// исключая окно гонки между чтением и изменением. created_at не обновляется;
// возвращается сохраненная строка.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	var updated entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes SET title = $1, content = $2
         WHERE id = $3 AND owner_id = $4
         RETURNING id, owner_id, title, content, created_at`,
		title, content, noteID, ownerID,
	).Scan(&updated.ID, &updated.OwnerID, &updated.Title, &updated.Content, &updated.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, noteID)
		}
		if isMalformedIDErr(err) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

// Delete удаляет заметку условной записью по (id, owner_id).
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		if isMalformedIDErr(err) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.classifyMiss(ctx, noteID)
	}

	return nil
}

// isMalformedIDErr сообщает, что идентификатор не прошел приведение к uuid
// (SQLSTATE 22P02). Такой идентификатор не может существовать.
func isMalformedIDErr(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// classifyMiss различает отсутствующую и чужую заметку после условной записи,
// затронувшей ноль строк.
func (r *NoteRepository) classifyMiss(ctx context.Context, noteID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "classifyMiss"))

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notes WHERE id = $1)`,
		noteID,
	).Scan(&exists)

	if err != nil {
		log.Error(ctx, "failed to check note existence", zap.Error(err))
		return fmt.Errorf("failed to check note existence: %w", err)
	}

	if exists {
		log.Debug(ctx, "note owned by another user", zap.String("noteID", noteID))
		return entities.ErrNoteAccessDenied
	}

	log.Debug(ctx, "note not found", zap.String("noteID", noteID))
	return entities.ErrNoteNotFound
}
