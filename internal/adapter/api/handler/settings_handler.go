package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

type settingsRequest struct {
	CompanyName      string               `json:"companyName" validate:"required,max=120"`
	Tagline          string               `json:"tagline" validate:"max=300"`
	Email            string               `json:"email" validate:"omitempty,email"`
	Phone            string               `json:"phone" validate:"max=30"`
	Whatsapp         string               `json:"whatsapp" validate:"max=30"`
	Address          string               `json:"address" validate:"max=300"`
	Logo             string               `json:"logo"`
	ShowPricesGlobal bool                 `json:"showPricesGlobal"`
	ShowGhsPrice     bool                 `json:"showGhsPrice"`
	GhsRate          float64              `json:"ghsRate" validate:"gte=0"`
	AnnBarText       string               `json:"annBarText"`
	AnnBarLink       string               `json:"annBarLink"`
	AnnBarOn         bool                 `json:"annBarOn"`
	HeroSlides       []entity.HeroSlide   `json:"heroSlides"`
	Theme            entity.Theme         `json:"theme"`
	Testimonials     []entity.Testimonial `json:"testimonials"`
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUseCase.GetSettings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.settingsUseCase.SaveSettings(c.Request().Context(), &entity.Settings{
		CompanyName:      req.CompanyName,
		Tagline:          req.Tagline,
		Email:            req.Email,
		Phone:            req.Phone,
		Whatsapp:         req.Whatsapp,
		Address:          req.Address,
		Logo:             req.Logo,
		ShowPricesGlobal: req.ShowPricesGlobal,
		ShowGhsPrice:     req.ShowGhsPrice,
		GhsRate:          req.GhsRate,
		AnnBarText:       req.AnnBarText,
		AnnBarLink:       req.AnnBarLink,
		AnnBarOn:         req.AnnBarOn,
		HeroSlides:       req.HeroSlides,
		Theme:            req.Theme,
		Testimonials:     req.Testimonials,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
