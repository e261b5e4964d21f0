// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"notehub/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций с хранилищем учетных данных.
// Уникальность username обеспечивается ограничением в самом хранилище.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)
}
