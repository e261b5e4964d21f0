// Package entities определяет доменные сущности сервиса.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUsername         = errors.New("username cannot be empty")
	ErrEmptyPassword         = errors.New("password cannot be empty")
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already taken")
)

// User представляет основную сущность домена пользователя.
// Пользователь создается при регистрации и далее не изменяется.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
