package repositories

import (
	"context"

	"notehub/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Update и Delete выполняются условной записью по паре (id, owner_id);
// при нуле затронутых строк хранилище различает отсутствие заметки
// и чужое владение.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)

	GetByID(ctx context.Context, noteID string) (*entities.Note, error)

	Update(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error)

	Delete(ctx context.Context, noteID, ownerID string) error
}
