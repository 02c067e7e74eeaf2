package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/errors"
	"jaybesin/pkg/logger"
)

// CatalogUseCase is the write-back layer for the three catalog
// collections: vehicles, charging stations, and spare parts.
type CatalogUseCase struct {
	vehicleRepo repository.VehicleRepository
	chargerRepo repository.ChargerRepository
	partRepo    repository.PartRepository
	uploader    Uploader
}

func NewCatalogUseCase(
	vehicleRepo repository.VehicleRepository,
	chargerRepo repository.ChargerRepository,
	partRepo repository.PartRepository,
	uploader Uploader,
) *CatalogUseCase {
	return &CatalogUseCase{
		vehicleRepo: vehicleRepo,
		chargerRepo: chargerRepo,
		partRepo:    partRepo,
		uploader:    uploader,
	}
}

func isDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// resolveImage uploads an unsaved file pick and returns its retrieval
// URL; values that are already URLs pass through untouched.
func (uc *CatalogUseCase) resolveImage(ctx context.Context, value, path string) (string, error) {
	if value == "" || !isDataURL(value) {
		return value, nil
	}
	return uc.uploader.UploadDataURL(ctx, value, path)
}

// SaveVehicle upserts a vehicle. A vehicle with no ID is created and the
// store assigns one. Raw data-URL images are uploaded to the blob store
// first so documents never carry embedded base64 payloads.
func (uc *CatalogUseCase) SaveVehicle(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	if !vehicle.Availability.IsValid() {
		return nil, errors.BadRequest("Unknown availability value", nil)
	}

	ts := time.Now().UnixMilli()
	for i, img := range vehicle.Images {
		resolved, err := uc.resolveImage(ctx, img, fmt.Sprintf("vehicles/%d_img_%d", ts, i))
		if err != nil {
			return nil, errors.Internal("Failed to upload vehicle image", err)
		}
		vehicle.Images[i] = resolved
	}

	logo, err := uc.resolveImage(ctx, vehicle.Logo, fmt.Sprintf("vehicles/%d_logo", ts))
	if err != nil {
		return nil, errors.Internal("Failed to upload vehicle logo", err)
	}
	vehicle.Logo = logo

	if err := uc.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (uc *CatalogUseCase) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	return uc.vehicleRepo.GetByID(ctx, id)
}

// DeleteVehicle removes the document; deleting an unknown ID is a no-op
// success. Uploaded blobs are cleaned up best-effort afterwards.
func (uc *CatalogUseCase) DeleteVehicle(ctx context.Context, id string) error {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		vehicle = nil
	}

	if err := uc.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if vehicle != nil {
		urls := append([]string{}, vehicle.Images...)
		if vehicle.Logo != "" {
			urls = append(urls, vehicle.Logo)
		}
		for _, url := range urls {
			if isDataURL(url) || url == "" {
				continue
			}
			if err := uc.uploader.DeleteByURL(ctx, url); err != nil {
				logger.Warn("Orphaned blob for vehicle %s: %v", id, err)
			}
		}
	}

	return nil
}

func (uc *CatalogUseCase) SaveCharger(ctx context.Context, charger *entity.Charger) (*entity.Charger, error) {
	if err := uc.chargerRepo.Save(ctx, charger); err != nil {
		return nil, err
	}
	return charger, nil
}

func (uc *CatalogUseCase) DeleteCharger(ctx context.Context, id string) error {
	return uc.chargerRepo.Delete(ctx, id)
}

func (uc *CatalogUseCase) SavePart(ctx context.Context, part *entity.Part) (*entity.Part, error) {
	if err := uc.partRepo.Save(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

func (uc *CatalogUseCase) DeletePart(ctx context.Context, id string) error {
	return uc.partRepo.Delete(ctx, id)
}
