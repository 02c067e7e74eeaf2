package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/errors"
	"jaybesin/pkg/logger"
)

const vehiclesCollection = "vehicles"

type firestoreVehicleRepository struct {
	client *firestore.Client
}

func NewFirestoreVehicleRepository(client *firestore.Client) repository.VehicleRepository {
	return &firestoreVehicleRepository{
		client: client,
	}
}

func (r *firestoreVehicleRepository) Save(ctx context.Context, vehicle *entity.Vehicle) error {
	// Generate ID if not provided
	if vehicle.ID == "" {
		doc := r.client.Collection(vehiclesCollection).NewDoc()
		vehicle.ID = doc.ID
	}

	_, err := r.client.Collection(vehiclesCollection).Doc(vehicle.ID).Set(ctx, vehicle)
	if err != nil {
		return errors.Internal("Failed to save vehicle", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	doc, err := r.client.Collection(vehiclesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vehicle", err)
		}
		return nil, errors.Internal("Failed to get vehicle", err)
	}

	var vehicle entity.Vehicle
	if err := doc.DataTo(&vehicle); err != nil {
		return nil, errors.Internal("Failed to parse vehicle data", err)
	}
	vehicle.ID = doc.Ref.ID

	return &vehicle, nil
}

func (r *firestoreVehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	iter := r.client.Collection(vehiclesCollection).Documents(ctx)
	var vehicles []*entity.Vehicle

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate vehicles", err)
		}
		var vehicle entity.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			return nil, errors.Internal("Failed to parse vehicle data", err)
		}
		vehicle.ID = doc.Ref.ID
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *firestoreVehicleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(vehiclesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete vehicle", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) Watch(ctx context.Context, fn func([]*entity.Vehicle)) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(vehiclesCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.LogWatchError(vehiclesCollection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.LogWatchError(vehiclesCollection, err)
				continue
			}

			vehicles := make([]*entity.Vehicle, 0, len(docs))
			for _, doc := range docs {
				var vehicle entity.Vehicle
				if err := doc.DataTo(&vehicle); err != nil {
					logger.LogWatchError(vehiclesCollection, err)
					continue
				}
				vehicle.ID = doc.Ref.ID
				vehicles = append(vehicles, &vehicle)
			}

			fn(vehicles)
		}
	}()

	return cancel
}
