package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/deliveries"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/orders"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/middleware"
)

func DeliveriesRoutes(r *gin.Engine) {
	// Delivery operations belong to the kitchen board (admin only)
	deliveriesRoutes := r.Group("/deliveries")
	deliveriesRoutes.Use(middleware.JWTAuth())
	deliveriesRoutes.Use(middleware.AdminAuth())
	{
		deliveriesRoutes.GET("", deliveries.ListDeliveries)
		deliveriesRoutes.PUT("/:id/status", deliveries.AdvanceDeliveryStatus)
		deliveriesRoutes.POST("/:id/photo", deliveries.UploadDeliveryPhoto)
	}

	// Day-ahead materialization job entry point (admin only)
	kitchenRoutes := r.Group("/kitchen")
	kitchenRoutes.Use(middleware.JWTAuth())
	kitchenRoutes.Use(middleware.AdminAuth())
	kitchenRoutes.POST("/materialize", orders.MaterializeUpcoming)
}
