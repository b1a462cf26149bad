package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/stripe"
)

func StripeRoutes(r *gin.Engine) {
	// Signature-verified, no JWT: Stripe calls this directly
	r.POST("/webhook/stripe", stripe.StripeWebhookHandler)
}
