package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для выпуска и проверки токенов доступа.
type TokenService interface {
	GenerateToken(ctx context.Context, userID string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (string, error)
}
