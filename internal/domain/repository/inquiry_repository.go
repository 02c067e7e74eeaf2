package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context) ([]*entity.Inquiry, error)
	Delete(ctx context.Context, id string) error
	// UpdateStatus merge-writes only the status field.
	UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error
	Watch(ctx context.Context, fn func([]*entity.Inquiry)) func()
}
