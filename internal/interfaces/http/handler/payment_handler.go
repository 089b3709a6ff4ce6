package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/afeayo2/Econmmerce/internal/application/payment"
)

type PaymentHandler struct {
	reconciler *app.Reconciler
}

func NewPaymentHandler(reconciler *app.Reconciler) *PaymentHandler {
	return &PaymentHandler{reconciler: reconciler}
}

// Verify is the gateway callback target. The payer's browser always gets a
// redirect, never an error page from this service.
func (h *PaymentHandler) Verify(c *gin.Context) {
	orderID := c.Param("orderId")
	reference := c.Query("reference")

	outcome := h.reconciler.Reconcile(c.Request.Context(), orderID, reference)
	c.Redirect(http.StatusFound, outcome.RedirectURL)
}
