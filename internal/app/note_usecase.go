package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/api"
	"notehub/internal/ports/cache"
	"notehub/internal/ports/repositories"
	"notehub/pkg/logger"
)

const (
	methodCreateNote = "CreateNote"
	methodListNotes  = "ListNotes"
	methodGetNote    = "GetNote"
	methodUpdateNote = "UpdateNote"
	methodDeleteNote = "DeleteNote"

	msgCreatingNote     = "creating note"
	msgNoteCreated      = "note created"
	msgListingNotes     = "listing notes"
	msgNotesFromCache   = "notes served from cache"
	msgGettingNote      = "getting note"
	msgUpdatingNote     = "updating note"
	msgNoteUpdated      = "note updated"
	msgDeletingNote     = "deleting note"
	msgNoteDeleted      = "note deleted"
	msgNoteMissing      = "note not found"
	msgNoteNotOwned     = "note owned by another user"
	msgCacheReadFailed  = "cache read failed, falling back to store"
	msgCacheWriteFailed = "cache write failed"
	msgCacheEvictFailed = "cache invalidation failed"

	msgErrCreateNote = "failed to create note"
	msgErrListNotes  = "failed to list notes"
	msgErrGetNote    = "failed to get note"
	msgErrUpdateNote = "failed to update note"
	msgErrDeleteNote = "failed to delete note"

	errCtxValidatingTitle = "validating title"
	errCtxCreatingNote    = "creating note"
	errCtxListingNotes    = "listing notes"
	errCtxGettingNote     = "getting note"
	errCtxUpdatingNote    = "updating note"
	errCtxDeletingNote    = "deleting note"
)

// notesCacheKeyPrefix - префикс ключа кэша списка заметок владельца.
const notesCacheKeyPrefix = "notes:"

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
// Кэш опционален: его недоступность деградирует до обращения к хранилищу.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр сценариев работы с заметками.
func NewNoteUseCase(noteRepo repositories.NoteRepository, listCache cache.Cache) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
		cache:    listCache,
	}
}

// CreateNote создает заметку от имени владельца.
func (n *NoteUseCaseImpl) CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgCreatingNote)

	if title == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingTitle, entities.ErrEmptyNoteTitle)
	}

	note := &entities.Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}

	created, err := n.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	n.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// ListNotes возвращает все заметки владельца, новые первыми.
func (n *NoteUseCaseImpl) ListNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgListingNotes)

	if cached, ok := n.listFromCache(ctx, ownerID); ok {
		log.Debug(ctx, msgNotesFromCache)
		return cached, nil
	}

	notes, err := n.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	n.storeListCache(ctx, ownerID, notes)

	return notes, nil
}

// GetNote возвращает заметку владельца. Чужая заметка не читается:
// после подтверждения существования сверяется владелец.
func (n *NoteUseCaseImpl) GetNote(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetNote),
		zap.String("noteID", noteID),
		zap.String("ownerID", ownerID),
	)
	log.Debug(ctx, msgGettingNote)

	note, err := n.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteMissing)
			return nil, fmt.Errorf("%s: %w", errCtxGettingNote, entities.ErrNoteNotFound)
		}
		log.Error(ctx, msgErrGetNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	if note.OwnerID != ownerID {
		log.Debug(ctx, msgNoteNotOwned)
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, entities.ErrNoteAccessDenied)
	}

	return note, nil
}

// UpdateNote заменяет заголовок и содержимое заметки владельца.
// created_at при обновлении не меняется.
func (n *NoteUseCaseImpl) UpdateNote(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUpdateNote),
		zap.String("noteID", noteID),
		zap.String("ownerID", ownerID),
	)
	log.Debug(ctx, msgUpdatingNote)

	if title == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingTitle, entities.ErrEmptyNoteTitle)
	}

	updated, err := n.noteRepo.Update(ctx, noteID, ownerID, title, content)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoteNotFound):
			log.Debug(ctx, msgNoteMissing)
		case errors.Is(err, entities.ErrNoteAccessDenied):
			log.Debug(ctx, msgNoteNotOwned)
		default:
			log.Error(ctx, msgErrUpdateNote, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	n.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgNoteUpdated)
	return updated, nil
}

// DeleteNote удаляет заметку владельца.
func (n *NoteUseCaseImpl) DeleteNote(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteNote),
		zap.String("noteID", noteID),
		zap.String("ownerID", ownerID),
	)
	log.Debug(ctx, msgDeletingNote)

	if err := n.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		switch {
		case errors.Is(err, entities.ErrNoteNotFound):
			log.Debug(ctx, msgNoteMissing)
		case errors.Is(err, entities.ErrNoteAccessDenied):
			log.Debug(ctx, msgNoteNotOwned)
		default:
			log.Error(ctx, msgErrDeleteNote, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	n.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgNoteDeleted)
	return nil
}

// listFromCache читает список заметок владельца из кэша.
func (n *NoteUseCaseImpl) listFromCache(ctx context.Context, ownerID string) ([]*entities.Note, bool) {
	if n.cache == nil {
		return nil, false
	}

	log := logger.Log(ctx)

	raw, err := n.cache.Get(ctx, notesCacheKeyPrefix+ownerID)
	if err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var notes []*entities.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil, false
	}
	return notes, true
}

// storeListCache сохраняет список заметок владельца в кэш.
func (n *NoteUseCaseImpl) storeListCache(ctx context.Context, ownerID string, notes []*entities.Note) {
	if n.cache == nil {
		return
	}

	log := logger.Log(ctx)

	raw, err := json.Marshal(notes)
	if err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
		return
	}
	if err := n.cache.Set(ctx, notesCacheKeyPrefix+ownerID, string(raw), 0); err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}
}

// invalidateListCache сбрасывает кэшированный список заметок владельца.
func (n *NoteUseCaseImpl) invalidateListCache(ctx context.Context, ownerID string) {
	if n.cache == nil {
		return
	}

	if err := n.cache.Delete(ctx, notesCacheKeyPrefix+ownerID); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheEvictFailed, zap.Error(err))
	}
}
