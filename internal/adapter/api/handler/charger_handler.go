package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type ChargerHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	liveFeed       *usecase.LiveFeedUseCase
}

func NewChargerHandler(catalogUseCase *usecase.CatalogUseCase, liveFeed *usecase.LiveFeedUseCase) *ChargerHandler {
	return &ChargerHandler{
		catalogUseCase: catalogUseCase,
		liveFeed:       liveFeed,
	}
}

type chargerRequest struct {
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Type         string  `json:"type" validate:"required"`
	Power        string  `json:"power" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Installation float64 `json:"installation" validate:"gte=0"`
	Emoji        string  `json:"emoji"`
}

func (r *chargerRequest) toEntity(id string) *entity.Charger {
	return &entity.Charger{
		ID:           id,
		Name:         r.Name,
		Brand:        r.Brand,
		Type:         r.Type,
		Power:        r.Power,
		Price:        r.Price,
		Installation: r.Installation,
		Emoji:        r.Emoji,
	}
}

func (h *ChargerHandler) ListChargers(c echo.Context) error {
	return response.Success(c, h.liveFeed.Chargers())
}

func (h *ChargerHandler) CreateCharger(c echo.Context) error {
	var req chargerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	charger, err := h.catalogUseCase.SaveCharger(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, charger)
}

func (h *ChargerHandler) UpdateCharger(c echo.Context) error {
	var req chargerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	charger, err := h.catalogUseCase.SaveCharger(c.Request().Context(), req.toEntity(c.Param("id")))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, charger)
}

func (h *ChargerHandler) DeleteCharger(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCharger(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Charger deleted successfully",
	})
}
