package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/afeayo2/Econmmerce/internal/application/orders"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
)

type AdminOrderHandler struct {
	svc    *app.StatusService
	orders repository.OrderRepository
}

func NewAdminOrderHandler(svc *app.StatusService, orders repository.OrderRepository) *AdminOrderHandler {
	return &AdminOrderHandler{svc: svc, orders: orders}
}

type updateOrderRequest struct {
	Status        *string         `json:"status"`
	PaymentStatus *string         `json:"payment_status"`
	Shipping      *order.Shipping `json:"shipping"`
}

// Update applies any subset of status, payment status and shipping details.
func (h *AdminOrderHandler) Update(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := app.UpdateCommand{
		OrderID:  c.Param("id"),
		Shipping: req.Shipping,
	}
	if req.Status != nil {
		status := order.Status(*req.Status)
		cmd.Status = &status
	}
	if req.PaymentStatus != nil {
		ps := order.PaymentStatus(*req.PaymentStatus)
		cmd.PaymentStatus = &ps
	}

	o, err := h.svc.Update(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
