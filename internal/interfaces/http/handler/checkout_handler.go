package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/afeayo2/Econmmerce/internal/application/checkout"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
	"github.com/afeayo2/Econmmerce/internal/interfaces/http/middleware"
)

type CheckoutHandler struct {
	svc    *app.Service
	orders repository.OrderRepository
}

func NewCheckoutHandler(svc *app.Service, orders repository.OrderRepository) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, orders: orders}
}

type checkoutRequest struct {
	Address       string         `json:"address" binding:"required"`
	Phone         string         `json:"phone"`
	Items         []app.CartItem `json:"items"`
	PaymentMethod string         `json:"payment_method" binding:"required"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := middleware.CustomerFrom(c)
	result, err := h.svc.Checkout(c.Request.Context(), app.Command{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Email:         customer.Email,
		Address:       req.Address,
		Phone:         req.Phone,
		Items:         req.Items,
		PaymentMethod: order.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"order": result.Order}
	if result.PaymentURL != "" {
		resp["payment_url"] = result.PaymentURL
	}
	if result.BankDetails != nil {
		resp["message"] = "Please transfer the amount to the account below"
		resp["bank_details"] = result.BankDetails
	}
	c.JSON(http.StatusCreated, resp)
}

// MyOrders lists the calling customer's orders, newest first.
func (h *CheckoutHandler) MyOrders(c *gin.Context) {
	customer := middleware.CustomerFrom(c)

	orders, err := h.orders.FindByCustomer(c.Request.Context(), customer.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
