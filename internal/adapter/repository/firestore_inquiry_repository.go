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

const inquiriesCollection = "inquiries"

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == "" {
		doc := r.client.Collection(inquiriesCollection).NewDoc()
		inquiry.ID = doc.ID
	}

	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(inquiriesCollection).Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	doc, err := r.client.Collection(inquiriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}

	var inquiry entity.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.Internal("Failed to parse inquiry data", err)
	}
	inquiry.ID = doc.Ref.ID

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) List(ctx context.Context) ([]*entity.Inquiry, error) {
	iter := r.client.Collection(inquiriesCollection).Documents(ctx)
	var inquiries []*entity.Inquiry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate inquiries", err)
		}
		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, errors.Internal("Failed to parse inquiry data", err)
		}
		inquiry.ID = doc.Ref.ID
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, nil
}

func (r *firestoreInquiryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(inquiriesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) UpdateStatus(ctx context.Context, id string, inquiryStatus entity.InquiryStatus) error {
	_, err := r.client.Collection(inquiriesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: inquiryStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Inquiry", err)
		}
		return errors.Internal("Failed to update inquiry status", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) Watch(ctx context.Context, fn func([]*entity.Inquiry)) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(inquiriesCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.LogWatchError(inquiriesCollection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.LogWatchError(inquiriesCollection, err)
				continue
			}

			inquiries := make([]*entity.Inquiry, 0, len(docs))
			for _, doc := range docs {
				var inquiry entity.Inquiry
				if err := doc.DataTo(&inquiry); err != nil {
					logger.LogWatchError(inquiriesCollection, err)
					continue
				}
				inquiry.ID = doc.Ref.ID
				inquiries = append(inquiries, &inquiry)
			}

			fn(inquiries)
		}
	}()

	return cancel
}
