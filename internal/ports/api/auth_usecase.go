// Package api определяет интерфейсы прикладных сценариев.
package api

import (
	"context"

	"notehub/internal/domain/entities"
	"notehub/internal/domain/services"
)

// AuthUseCase определяет сценарии регистрации и входа.
type AuthUseCase interface {
	Register(ctx context.Context, username, password string) (*entities.User, error)

	Login(ctx context.Context, username, password string) (*services.Session, error)
}
