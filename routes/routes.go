package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/ping"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // All origins allowed in dev
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pingHandler := ping.New()
	r.GET("/ping", pingHandler.HandlePing)

	AuthRoutes(r)
	OrdersRoutes(r)
	SubscriptionsRoutes(r)
	DeliveriesRoutes(r)
	RequestsRoutes(r)
	StripeRoutes(r)

	return r
}
