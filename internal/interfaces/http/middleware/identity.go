package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity headers are set by the upstream auth layer; credential checks
// and token parsing happen there, not in this service.
const (
	HeaderCustomerID   = "X-Customer-Id"
	HeaderCustomerName = "X-Customer-Name"
	HeaderCustomerMail = "X-Customer-Email"
	HeaderAdminID      = "X-Admin-Id"
)

type Customer struct {
	ID    string
	Name  string
	Email string
}

const customerKey = "customer"

// RequireCustomer rejects requests without a customer identity.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := Customer{
			ID:    c.GetHeader(HeaderCustomerID),
			Name:  c.GetHeader(HeaderCustomerName),
			Email: c.GetHeader(HeaderCustomerMail),
		}
		if customer.ID == "" || customer.Email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "customer identity required"})
			return
		}
		c.Set(customerKey, customer)
		c.Next()
	}
}

func CustomerFrom(c *gin.Context) Customer {
	v, _ := c.Get(customerKey)
	customer, _ := v.(Customer)
	return customer
}

// RequireAdmin rejects requests without an admin identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderAdminID) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin identity required"})
			return
		}
		c.Next()
	}
}
