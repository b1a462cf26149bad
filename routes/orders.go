package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/orders"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/middleware"
)

func OrdersRoutes(r *gin.Engine) {
	// The acceptance gate and the kitchen pipeline are admin decisions
	ordersRoutes := r.Group("/orders")
	ordersRoutes.Use(middleware.JWTAuth())
	ordersRoutes.Use(middleware.AdminAuth())
	{
		ordersRoutes.GET("", orders.GetAllOrders)
		ordersRoutes.GET("/:id", orders.GetOrderByID)
		ordersRoutes.PUT("/:id/acceptance", orders.SetOrderAcceptance)
		ordersRoutes.POST("/:id/kitchen", orders.MoveOrderToKitchen)
	}
}
