package usecase

import (
	"context"
	"time"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
)

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryUseCase(inquiryRepo repository.InquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
	}
}

// Submit records a customer inquiry. Status and date are always set
// server-side; whatever the caller sent is overwritten.
func (uc *InquiryUseCase) Submit(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error) {
	inquiry.ID = ""
	inquiry.Status = entity.InquiryNew
	inquiry.Date = time.Now().Format("2006-01-02")

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// MarkReplied transitions new -> replied; marking an already-replied
// inquiry is a no-op success. No transition back to new exists.
func (uc *InquiryUseCase) MarkReplied(ctx context.Context, id string) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status == entity.InquiryReplied {
		return inquiry, nil
	}

	if err := uc.inquiryRepo.UpdateStatus(ctx, id, entity.InquiryReplied); err != nil {
		return nil, err
	}

	inquiry.Status = entity.InquiryReplied
	return inquiry, nil
}

func (uc *InquiryUseCase) ListInquiries(ctx context.Context) ([]*entity.Inquiry, error) {
	return uc.inquiryRepo.List(ctx)
}

func (uc *InquiryUseCase) DeleteInquiry(ctx context.Context, id string) error {
	return uc.inquiryRepo.Delete(ctx, id)
}
