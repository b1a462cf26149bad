package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/db"
	_ "github.com/oggainzofficial-dotcom/og-gainz-sub001/docs"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/routes"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

// @title OG Gainz Subscription API
// @version 1.0
// @description Delivery lifecycle engine for the OG Gainz meal subscriptions
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Delivery photo uploads will not work.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
