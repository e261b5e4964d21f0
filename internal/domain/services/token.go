// Package services определяет доменные типы и ошибки сервисного слоя.
package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами.
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrGeneratingToken = errors.New("failed to generate token")
)

// TokenConfig содержит настройки для сервиса токенов.
type TokenConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// Claims определяет полезную нагрузку токена идентичности.
// Subject - идентификатор пользователя, срок действия проверяется при верификации.
type Claims struct {
	UserID    string    `json:"user_id"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
