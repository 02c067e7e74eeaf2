package handler

import (
	"jaybesin/internal/usecase"
)

var (
	authHandler     *AuthHandler
	vehicleHandler  *VehicleHandler
	chargerHandler  *ChargerHandler
	partHandler     *PartHandler
	orderHandler    *OrderHandler
	inquiryHandler  *InquiryHandler
	settingsHandler *SettingsHandler
	seedHandler     *SeedHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	orderUseCase *usecase.OrderUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	seedUseCase *usecase.SeedUseCase,
	liveFeed *usecase.LiveFeedUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	vehicleHandler = NewVehicleHandler(catalogUseCase, liveFeed)
	chargerHandler = NewChargerHandler(catalogUseCase, liveFeed)
	partHandler = NewPartHandler(catalogUseCase, liveFeed)
	orderHandler = NewOrderHandler(orderUseCase, liveFeed)
	inquiryHandler = NewInquiryHandler(inquiryUseCase, liveFeed)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	seedHandler = NewSeedHandler(seedUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetVehicleHandler() *VehicleHandler {
	return vehicleHandler
}

func GetChargerHandler() *ChargerHandler {
	return chargerHandler
}

func GetPartHandler() *PartHandler {
	return partHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetSeedHandler() *SeedHandler {
	return seedHandler
}
