package handler

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
	"jaybesin/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
	liveFeed     *usecase.LiveFeedUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, liveFeed *usecase.LiveFeedUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		liveFeed:     liveFeed,
	}
}

type orderRequest struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone"`
	Item     string  `json:"item" validate:"required"`
	Type     string  `json:"type" validate:"omitempty,oneof=vehicle charging parts"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=confirmed payment_received sourcing port_china ocean_freight tema_port customs ready delivered"`
	Date     string  `json:"date"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed payment_received sourcing port_china ocean_freight tema_port customs ready delivered"`
}

// trackingResponse exposes only what the public tracking page needs.
type trackingResponse struct {
	ID       string                `json:"id"`
	Item     string                `json:"item"`
	Status   entity.OrderStatus    `json:"status"`
	Tracking []entity.TrackingStep `json:"tracking"`
}

func (h *OrderHandler) SaveOrder(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.SaveOrder(c.Request().Context(), &entity.Order{
		ID:       req.ID,
		Customer: req.Customer,
		Email:    req.Email,
		Phone:    req.Phone,
		Item:     req.Item,
		Type:     req.Type,
		Amount:   req.Amount,
		Status:   entity.OrderStatus(req.Status),
		Date:     req.Date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) SetStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.SetStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// ListOrders pages through the live replica for the admin dashboard.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders := h.liveFeed.Orders()
	p := utils.GetPaginationParams(c)
	start, end := p.Bounds(len(orders))

	return response.Success(c, map[string]interface{}{
		"items": orders[start:end],
		"total": len(orders),
		"page":  p.Page,
	})
}

func (h *OrderHandler) Track(c echo.Context) error {
	order, err := h.orderUseCase.TrackByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, trackingResponse{
		ID:       order.ID,
		Item:     order.Item,
		Status:   order.Status,
		Tracking: order.Tracking,
	})
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Order deleted successfully",
	})
}
