package usecase

import (
	"context"
	"fmt"
	"time"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	apperrors "jaybesin/pkg/errors"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	uploader     Uploader
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, uploader Uploader) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		uploader:     uploader,
	}
}

// GetSettings reads the singleton once; no live subscription. An
// uninitialised store yields the compiled-in defaults.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if apperrors.Is(err, "NOT_FOUND") {
			defaults := DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}

	return settings, nil
}

// SaveSettings merge-writes the singleton. Hero slide images and the
// brand logo may arrive as data URLs; they are uploaded and swapped for
// retrieval URLs before the document write.
func (uc *SettingsUseCase) SaveSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	ts := time.Now().UnixMilli()

	for i := range settings.HeroSlides {
		if !isDataURL(settings.HeroSlides[i].Image) {
			continue
		}
		url, err := uc.uploader.UploadDataURL(ctx, settings.HeroSlides[i].Image, fmt.Sprintf("hero/slide_%d_%d", i, ts))
		if err != nil {
			return nil, apperrors.Internal("Failed to upload hero slide", err)
		}
		settings.HeroSlides[i].Image = url
	}

	if isDataURL(settings.Logo) {
		url, err := uc.uploader.UploadDataURL(ctx, settings.Logo, fmt.Sprintf("brand/logo_%d", ts))
		if err != nil {
			return nil, apperrors.Internal("Failed to upload brand logo", err)
		}
		settings.Logo = url
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
