package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Delete(ctx context.Context, id string) error
	// UpdateStatus merge-writes status and the derived tracking steps,
	// leaving all other fields untouched.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, tracking []entity.TrackingStep) error
	Watch(ctx context.Context, fn func([]*entity.Order)) func()
}
