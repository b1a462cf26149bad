package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/requests"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/subscriptions"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/middleware"
)

func SubscriptionsRoutes(r *gin.Engine) {
	// Customers read their own schedule and submit pause requests
	subscriptionsPublicRoutes := r.Group("/subscriptions")
	subscriptionsPublicRoutes.Use(middleware.JWTAuth())
	{
		subscriptionsPublicRoutes.GET("/:id", subscriptions.GetSubscriptionByID)
		subscriptionsPublicRoutes.GET("/:id/upcoming", subscriptions.GetUpcomingDeliveries)
		subscriptionsPublicRoutes.GET("/:id/requests", requests.ListSubscriptionRequests)
		subscriptionsPublicRoutes.POST("/:id/pause-requests", requests.SubmitPauseRequest)
	}

	// Whole-subscription operations (admin only)
	subscriptionsPrivateRoutes := r.Group("/subscriptions")
	subscriptionsPrivateRoutes.Use(middleware.JWTAuth())
	subscriptionsPrivateRoutes.Use(middleware.AdminAuth())
	{
		subscriptionsPrivateRoutes.GET("", subscriptions.GetAllSubscriptions)
		subscriptionsPrivateRoutes.PUT("/:id/status", subscriptions.UpdateSubscriptionStatus)
	}
}
