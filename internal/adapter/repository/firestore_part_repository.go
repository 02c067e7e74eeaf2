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

const partsCollection = "parts"

type firestorePartRepository struct {
	client *firestore.Client
}

func NewFirestorePartRepository(client *firestore.Client) repository.PartRepository {
	return &firestorePartRepository{
		client: client,
	}
}

func (r *firestorePartRepository) Save(ctx context.Context, part *entity.Part) error {
	if part.ID == "" {
		doc := r.client.Collection(partsCollection).NewDoc()
		part.ID = doc.ID
	}

	_, err := r.client.Collection(partsCollection).Doc(part.ID).Set(ctx, part)
	if err != nil {
		return errors.Internal("Failed to save part", err)
	}

	return nil
}

func (r *firestorePartRepository) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	doc, err := r.client.Collection(partsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Part", err)
		}
		return nil, errors.Internal("Failed to get part", err)
	}

	var part entity.Part
	if err := doc.DataTo(&part); err != nil {
		return nil, errors.Internal("Failed to parse part data", err)
	}
	part.ID = doc.Ref.ID

	return &part, nil
}

func (r *firestorePartRepository) List(ctx context.Context) ([]*entity.Part, error) {
	iter := r.client.Collection(partsCollection).Documents(ctx)
	var parts []*entity.Part

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate parts", err)
		}
		var part entity.Part
		if err := doc.DataTo(&part); err != nil {
			return nil, errors.Internal("Failed to parse part data", err)
		}
		part.ID = doc.Ref.ID
		parts = append(parts, &part)
	}

	return parts, nil
}

func (r *firestorePartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(partsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete part", err)
	}

	return nil
}

func (r *firestorePartRepository) Watch(ctx context.Context, fn func([]*entity.Part)) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(partsCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.LogWatchError(partsCollection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.LogWatchError(partsCollection, err)
				continue
			}

			parts := make([]*entity.Part, 0, len(docs))
			for _, doc := range docs {
				var part entity.Part
				if err := doc.DataTo(&part); err != nil {
					logger.LogWatchError(partsCollection, err)
					continue
				}
				part.ID = doc.Ref.ID
				parts = append(parts, &part)
			}

			fn(parts)
		}
	}()

	return cancel
}
