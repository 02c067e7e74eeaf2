package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

// newTrackingCode builds a customer-facing code like "ACG-2024-4F7A2B".
func newTrackingCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ACG-%d-%s", time.Now().Year(), suffix)
}

// SaveOrder upserts an order. The ID doubles as the public tracking code;
// one is generated when the admin leaves it blank. The tracking timeline
// is always derived from the status.
func (uc *OrderUseCase) SaveOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if order.Status == "" {
		order.Status = entity.StatusConfirmed
	}
	if !order.Status.IsValid() {
		return nil, errors.BadRequest("Unknown order status", nil)
	}

	if order.ID == "" {
		order.ID = newTrackingCode()
	} else {
		// Editing an existing order must not lose recorded step dates
		// or the original creation time.
		stored, err := uc.orderRepo.GetByID(ctx, order.ID)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		if stored != nil {
			if len(order.Tracking) == 0 {
				order.Tracking = stored.Tracking
			}
			if order.CreatedAt.IsZero() {
				order.CreatedAt = stored.CreatedAt
			}
		}
	}
	if order.Date == "" {
		order.Date = time.Now().Format("2006-01-02")
	}

	order.DeriveTracking()

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// SetStatus sets the order to any defined pipeline stage. Progression is
// deliberately not enforced: an order at "confirmed" may go straight to
// "delivered". The tracking timeline is rebuilt from the new status in
// the same write, so the two can no longer diverge.
func (uc *OrderUseCase) SetStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.BadRequest("Unknown order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	order.DeriveTracking()

	if err := uc.orderRepo.UpdateStatus(ctx, id, status, order.Tracking); err != nil {
		return nil, err
	}

	return order, nil
}

// TrackByCode serves the public tracking page.
func (uc *OrderUseCase) TrackByCode(ctx context.Context, code string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, code)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.orderRepo.Delete(ctx, id)
}
