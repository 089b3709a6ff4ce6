package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/afeayo2/Econmmerce/internal/interfaces/http/handler"
	"github.com/afeayo2/Econmmerce/internal/interfaces/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	metrics *middleware.ServerMetrics,
	checkoutHandler *handler.CheckoutHandler,
	paymentHandler *handler.PaymentHandler,
	adminOrderHandler *handler.AdminOrderHandler,
	productHandler *handler.ProductHandler,
) {
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	customer := r.Group("/customer")
	{
		authed := customer.Group("", middleware.RequireCustomer())
		authed.POST("/checkout", checkoutHandler.Checkout)
		authed.GET("/my-orders", checkoutHandler.MyOrders)

		// Gateway callback: the provider redirects the payer here, so no
		// identity headers are present.
		customer.GET("/verify/:orderId", paymentHandler.Verify)
	}

	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/orders", adminOrderHandler.List)
		admin.PATCH("/orders/:id", adminOrderHandler.Update)
	}

	api := r.Group("/api")
	{
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		adminProducts := api.Group("/products", middleware.RequireAdmin())
		adminProducts.POST("", productHandler.Create)
		adminProducts.PUT("/:id", productHandler.Update)
		adminProducts.DELETE("/:id", productHandler.Delete)
	}
}
