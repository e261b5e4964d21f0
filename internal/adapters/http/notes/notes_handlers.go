// Package notes содержит HTTP обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/adapters/http/middleware"
	"notehub/internal/app/dto"
	"notehub/internal/domain/entities"
	"notehub/internal/ports/api"
	"notehub/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingIdentity    = "missing authenticated identity"
	ErrMsgInternalServer     = "internal server error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// ownerID возвращает проверенный субъект токена, сохраненный auth middleware.
func ownerID(ctx fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals(middleware.UserIDKey).(string)
	return id, ok && id != ""
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	owner, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgMissingIdentity)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, owner, req.Title, req.Content)
	if err != nil {
		return handleError(requestCtx, ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок владельца.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	owner, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgMissingIdentity)
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, owner)
	if err != nil {
		return handleError(requestCtx, ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	owner, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgMissingIdentity)
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.GetNote(requestCtx, noteID, owner)
	if err != nil {
		return handleError(requestCtx, ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	owner, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgMissingIdentity)
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, noteID, owner, req.Title, req.Content)
	if err != nil {
		return handleError(requestCtx, ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	owner, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgMissingIdentity)
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, noteID, owner); err != nil {
		return handleError(requestCtx, ctx, err)
	}

	if err := ctx.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// sendErrorResponse отправляет ответ об ошибке с заданным статусом.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError транслирует доменные ошибки в HTTP статусы. Текст внутренних
// ошибок хранилища клиенту не раскрывается.
func handleError(requestCtx context.Context, ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
	case errors.Is(err, entities.ErrNoteAccessDenied):
		return sendErrorResponse(ctx, http.StatusForbidden, entities.ErrNoteAccessDenied.Error())
	case errors.Is(err, entities.ErrEmptyNoteTitle):
		return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrEmptyNoteTitle.Error())
	default:
		logger.Log(requestCtx).Error(requestCtx, "note handler error", zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrMsgInternalServer)
	}
}
