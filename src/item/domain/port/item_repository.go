package port

import (
	"context"

	"almacen/src/item/domain/entity"
)

// ItemRepository define los métodos para persistir Items del catálogo
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, itemID int64) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, itemID int64) error
	Decrementar(ctx context.Context, itemID int64) error
	Incrementar(ctx context.Context, itemID int64) error
}
