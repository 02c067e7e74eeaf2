package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEveryCollection(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	chargerRepo := newFakeChargerRepo()
	partRepo := newFakePartRepo()
	orderRepo := newFakeOrderRepo()
	inquiryRepo := newFakeInquiryRepo()
	settingsRepo := &fakeSettingsRepo{}

	uc := NewSeedUseCase(vehicleRepo, chargerRepo, partRepo, orderRepo, inquiryRepo, settingsRepo)
	require.NoError(t, uc.Run(context.Background()))

	assert.Len(t, vehicleRepo.items, len(DefaultVehicles()))
	assert.Len(t, chargerRepo.items, len(DefaultChargers()))
	assert.Len(t, partRepo.items, len(DefaultParts()))
	assert.Len(t, orderRepo.items, len(DefaultOrders()))
	assert.Len(t, inquiryRepo.items, len(DefaultInquiries()))
	require.NotNil(t, settingsRepo.stored)
	assert.Equal(t, "Jaybesin Autos", settingsRepo.stored.CompanyName)

	// The demo order carries a coherent derived timeline.
	order, err := orderRepo.GetByID(context.Background(), "ACG-2024-001")
	require.NoError(t, err)
	assert.True(t, order.Tracking[order.Status.Index()].Active)
}
