package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/requests"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/middleware"
)

func RequestsRoutes(r *gin.Engine) {
	// Customers submit skip and withdraw requests
	skipRoutes := r.Group("/deliveries")
	skipRoutes.Use(middleware.JWTAuth())
	skipRoutes.POST("/:id/skip-requests", requests.SubmitSkipRequest)

	withdrawRoutes := r.Group("/pause-requests")
	withdrawRoutes.Use(middleware.JWTAuth())
	withdrawRoutes.POST("/:id/withdraw-requests", requests.SubmitWithdrawPauseRequest)

	// Admins decide them
	decisionRoutes := r.Group("/requests")
	decisionRoutes.Use(middleware.JWTAuth())
	decisionRoutes.Use(middleware.AdminAuth())
	decisionRoutes.PUT("/:id/decision", requests.DecideRequest)
}
