package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type VehicleHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	liveFeed       *usecase.LiveFeedUseCase
}

func NewVehicleHandler(catalogUseCase *usecase.CatalogUseCase, liveFeed *usecase.LiveFeedUseCase) *VehicleHandler {
	return &VehicleHandler{
		catalogUseCase: catalogUseCase,
		liveFeed:       liveFeed,
	}
}

type vehicleRequest struct {
	Brand        string            `json:"brand" validate:"required"`
	Model        string            `json:"model" validate:"required"`
	Year         int               `json:"year" validate:"required,gte=1990"`
	Type         string            `json:"type" validate:"required"`
	Fuel         string            `json:"fuel" validate:"required"`
	Drivetrain   string            `json:"drivetrain" validate:"required"`
	Price        float64           `json:"price" validate:"gte=0"`
	Duties       float64           `json:"duties" validate:"gte=0"`
	TotalGhana   float64           `json:"totalGhana" validate:"gte=0"`
	Availability string            `json:"availability" validate:"required,oneof=in_stock preorder"`
	ShowPrice    bool              `json:"showPrice"`
	Description  string            `json:"description"`
	Specs        map[string]string `json:"specs"`
	Images       []string          `json:"images"`
	Logo         string            `json:"logo"`
	Emoji        string            `json:"emoji"`
	Featured     bool              `json:"featured"`
}

func (r *vehicleRequest) toEntity(id string) *entity.Vehicle {
	return &entity.Vehicle{
		ID:           id,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Type:         r.Type,
		Fuel:         r.Fuel,
		Drivetrain:   r.Drivetrain,
		Price:        r.Price,
		Duties:       r.Duties,
		TotalGhana:   r.TotalGhana,
		Availability: entity.Availability(r.Availability),
		ShowPrice:    r.ShowPrice,
		Description:  r.Description,
		Specs:        r.Specs,
		Images:       r.Images,
		Logo:         r.Logo,
		Emoji:        r.Emoji,
		Featured:     r.Featured,
	}
}

// ListVehicles serves the public garage from the live replica.
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	return response.Success(c, h.liveFeed.Vehicles())
}

func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	vehicle, err := h.catalogUseCase.GetVehicle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicle)
}

func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vehicle, err := h.catalogUseCase.SaveVehicle(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vehicle, err := h.catalogUseCase.SaveVehicle(c.Request().Context(), req.toEntity(c.Param("id")))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	if err := h.catalogUseCase.DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Vehicle deleted successfully",
	})
}
