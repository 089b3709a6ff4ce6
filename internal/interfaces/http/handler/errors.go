package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afeayo2/Econmmerce/internal/application/checkout"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/product"
)

// respondError maps domain errors onto HTTP status codes: validation and
// stock problems are 400, missing records 404, gateway trouble 502 and
// anything else a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMissingField),
		errors.Is(err, order.ErrInvalidAmount),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidPaymentStatus),
		errors.Is(err, product.ErrCustomizationRequired),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrInvalidCategory),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrGateway):
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
