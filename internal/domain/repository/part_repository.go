package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type PartRepository interface {
	Save(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	List(ctx context.Context) ([]*entity.Part, error)
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context, fn func([]*entity.Part)) func()
}
