package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type SeedHandler struct {
	seedUseCase *usecase.SeedUseCase
}

func NewSeedHandler(seedUseCase *usecase.SeedUseCase) *SeedHandler {
	return &SeedHandler{
		seedUseCase: seedUseCase,
	}
}

func (h *SeedHandler) Seed(c echo.Context) error {
	if err := h.seedUseCase.Run(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Store seeded successfully",
	})
}
