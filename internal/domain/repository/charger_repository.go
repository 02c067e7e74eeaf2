package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type ChargerRepository interface {
	Save(ctx context.Context, charger *entity.Charger) error
	GetByID(ctx context.Context, id string) (*entity.Charger, error)
	List(ctx context.Context) ([]*entity.Charger, error)
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context, fn func([]*entity.Charger)) func()
}
