package api

import (
	"context"

	"notehub/internal/domain/entities"
)

// NoteUseCase определяет сценарии работы с заметками.
// Все операции выполняются от имени уже аутентифицированного владельца.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error)

	ListNotes(ctx context.Context, ownerID string) ([]*entities.Note, error)

	GetNote(ctx context.Context, noteID, ownerID string) (*entities.Note, error)

	UpdateNote(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error)

	DeleteNote(ctx context.Context, noteID, ownerID string) error
}
