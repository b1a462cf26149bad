package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/auth"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
}
