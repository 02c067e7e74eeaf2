package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/errors"
	"jaybesin/pkg/logger"
)

const ordersCollection = "orders"

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	// Order IDs are tracking codes and normally caller-supplied; fall
	// back to a store-generated ID only if none was set.
	if order.ID == "" {
		doc := r.client.Collection(ordersCollection).NewDoc()
		order.ID = doc.ID
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to save order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}
	order.ID = doc.Ref.ID

	return &order, nil
}

func (r *firestoreOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id string, orderStatus entity.OrderStatus, tracking []entity.TrackingStep) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus},
		{Path: "tracking", Value: tracking},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to update order status", err)
	}

	return nil
}

func (r *firestoreOrderRepository) Watch(ctx context.Context, fn func([]*entity.Order)) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(ordersCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.LogWatchError(ordersCollection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.LogWatchError(ordersCollection, err)
				continue
			}

			orders := make([]*entity.Order, 0, len(docs))
			for _, doc := range docs {
				var order entity.Order
				if err := doc.DataTo(&order); err != nil {
					logger.LogWatchError(ordersCollection, err)
					continue
				}
				order.ID = doc.Ref.ID
				orders = append(orders, &order)
			}

			fn(orders)
		}
	}()

	return cancel
}
