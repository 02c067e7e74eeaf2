package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type VehicleRepository interface {
	// Save upserts: an empty ID creates a new document and fills it in,
	// a non-empty ID writes to that document.
	Save(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	Delete(ctx context.Context, id string) error
	// Watch invokes fn with the complete current collection on
	// establishment and on every committed change, until the returned
	// unsubscribe func is called.
	Watch(ctx context.Context, fn func([]*entity.Vehicle)) func()
}
