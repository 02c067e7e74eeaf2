package usecase

import (
	"context"

	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/logger"
)

// SeedUseCase writes the default catalog, demo order, and settings to an
// empty store. Run once from the admin panel after provisioning.
type SeedUseCase struct {
	vehicleRepo  repository.VehicleRepository
	chargerRepo  repository.ChargerRepository
	partRepo     repository.PartRepository
	orderRepo    repository.OrderRepository
	inquiryRepo  repository.InquiryRepository
	settingsRepo repository.SettingsRepository
}

func NewSeedUseCase(
	vehicleRepo repository.VehicleRepository,
	chargerRepo repository.ChargerRepository,
	partRepo repository.PartRepository,
	orderRepo repository.OrderRepository,
	inquiryRepo repository.InquiryRepository,
	settingsRepo repository.SettingsRepository,
) *SeedUseCase {
	return &SeedUseCase{
		vehicleRepo:  vehicleRepo,
		chargerRepo:  chargerRepo,
		partRepo:     partRepo,
		orderRepo:    orderRepo,
		inquiryRepo:  inquiryRepo,
		settingsRepo: settingsRepo,
	}
}

func (uc *SeedUseCase) Run(ctx context.Context) error {
	settings := DefaultSettings()
	if err := uc.settingsRepo.Save(ctx, &settings); err != nil {
		return err
	}

	for _, v := range DefaultVehicles() {
		vehicle := v
		if err := uc.vehicleRepo.Save(ctx, &vehicle); err != nil {
			return err
		}
	}

	for _, c := range DefaultChargers() {
		charger := c
		if err := uc.chargerRepo.Save(ctx, &charger); err != nil {
			return err
		}
	}

	for _, p := range DefaultParts() {
		part := p
		if err := uc.partRepo.Save(ctx, &part); err != nil {
			return err
		}
	}

	for _, o := range DefaultOrders() {
		order := o
		if err := uc.orderRepo.Save(ctx, &order); err != nil {
			return err
		}
	}

	for _, i := range DefaultInquiries() {
		inquiry := i
		if err := uc.inquiryRepo.Create(ctx, &inquiry); err != nil {
			return err
		}
	}

	logger.Info("Store seeded with default data")
	return nil
}
