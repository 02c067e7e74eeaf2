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

const chargingCollection = "charging"

type firestoreChargerRepository struct {
	client *firestore.Client
}

func NewFirestoreChargerRepository(client *firestore.Client) repository.ChargerRepository {
	return &firestoreChargerRepository{
		client: client,
	}
}

func (r *firestoreChargerRepository) Save(ctx context.Context, charger *entity.Charger) error {
	if charger.ID == "" {
		doc := r.client.Collection(chargingCollection).NewDoc()
		charger.ID = doc.ID
	}

	_, err := r.client.Collection(chargingCollection).Doc(charger.ID).Set(ctx, charger)
	if err != nil {
		return errors.Internal("Failed to save charger", err)
	}

	return nil
}

func (r *firestoreChargerRepository) GetByID(ctx context.Context, id string) (*entity.Charger, error) {
	doc, err := r.client.Collection(chargingCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Charger", err)
		}
		return nil, errors.Internal("Failed to get charger", err)
	}

	var charger entity.Charger
	if err := doc.DataTo(&charger); err != nil {
		return nil, errors.Internal("Failed to parse charger data", err)
	}
	charger.ID = doc.Ref.ID

	return &charger, nil
}

func (r *firestoreChargerRepository) List(ctx context.Context) ([]*entity.Charger, error) {
	iter := r.client.Collection(chargingCollection).Documents(ctx)
	var chargers []*entity.Charger

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chargers", err)
		}
		var charger entity.Charger
		if err := doc.DataTo(&charger); err != nil {
			return nil, errors.Internal("Failed to parse charger data", err)
		}
		charger.ID = doc.Ref.ID
		chargers = append(chargers, &charger)
	}

	return chargers, nil
}

func (r *firestoreChargerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(chargingCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete charger", err)
	}

	return nil
}

func (r *firestoreChargerRepository) Watch(ctx context.Context, fn func([]*entity.Charger)) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(chargingCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.LogWatchError(chargingCollection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.LogWatchError(chargingCollection, err)
				continue
			}

			chargers := make([]*entity.Charger, 0, len(docs))
			for _, doc := range docs {
				var charger entity.Charger
				if err := doc.DataTo(&charger); err != nil {
					logger.LogWatchError(chargingCollection, err)
					continue
				}
				charger.ID = doc.Ref.ID
				chargers = append(chargers, &charger)
			}

			fn(chargers)
		}
	}()

	return cancel
}
