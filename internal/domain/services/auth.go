package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// Session представляет выданный пользователю токен доступа.
// Токен не хранится на сервере: истечение срока - единственный механизм инвалидации.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}
