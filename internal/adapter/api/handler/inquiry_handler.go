package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
	liveFeed       *usecase.LiveFeedUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase, liveFeed *usecase.LiveFeedUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
		liveFeed:       liveFeed,
	}
}

type inquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
	Type    string `json:"type" validate:"omitempty,oneof=vehicle charging parts tracking other"`
}

// Submit is the only unauthenticated write on the API.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.Submit(c.Request().Context(), &entity.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Type:      req.Type,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	return response.Success(c, h.liveFeed.Inquiries())
}

func (h *InquiryHandler) MarkReplied(c echo.Context) error {
	inquiry, err := h.inquiryUseCase.MarkReplied(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) DeleteInquiry(c echo.Context) error {
	if err := h.inquiryUseCase.DeleteInquiry(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Inquiry deleted successfully",
	})
}
