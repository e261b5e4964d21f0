package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteAccessDenied = errors.New("note belongs to another user")
	ErrEmptyNoteTitle   = errors.New("note title cannot be empty")
)

// Note представляет собой заметку пользователя.
// created_at выставляется хранилищем при создании и не обновляется.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
