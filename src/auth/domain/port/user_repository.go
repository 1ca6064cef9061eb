package port

import (
	"context"

	"almacen/src/auth/domain/entity"
)

// UserRepository define los métodos para persistir Users
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, userID int64) (*entity.User, error)
}
