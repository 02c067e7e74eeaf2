package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type PartHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	liveFeed       *usecase.LiveFeedUseCase
}

func NewPartHandler(catalogUseCase *usecase.CatalogUseCase, liveFeed *usecase.LiveFeedUseCase) *PartHandler {
	return &PartHandler{
		catalogUseCase: catalogUseCase,
		liveFeed:       liveFeed,
	}
}

type partRequest struct {
	Name       string  `json:"name" validate:"required"`
	Compatible string  `json:"compatible"`
	Category   string  `json:"category" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Emoji      string  `json:"emoji"`
}

func (r *partRequest) toEntity(id string) *entity.Part {
	return &entity.Part{
		ID:         id,
		Name:       r.Name,
		Compatible: r.Compatible,
		Category:   r.Category,
		Price:      r.Price,
		Emoji:      r.Emoji,
	}
}

func (h *PartHandler) ListParts(c echo.Context) error {
	return response.Success(c, h.liveFeed.Parts())
}

func (h *PartHandler) CreatePart(c echo.Context) error {
	var req partRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	part, err := h.catalogUseCase.SavePart(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, part)
}

func (h *PartHandler) UpdatePart(c echo.Context) error {
	var req partRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	part, err := h.catalogUseCase.SavePart(c.Request().Context(), req.toEntity(c.Param("id")))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, part)
}

func (h *PartHandler) DeletePart(c echo.Context) error {
	if err := h.catalogUseCase.DeletePart(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Part deleted successfully",
	})
}
