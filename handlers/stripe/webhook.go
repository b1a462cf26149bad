package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/db"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/scheduling"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

// StripeWebhookHandler receives the paid signal from Stripe. Payment capture
// lives entirely on the Stripe side; the engine only stamps paid_at on the
// referenced order, which the acceptance gate requires before a confirm.
func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cannot read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret is not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		handleCheckoutSessionCompleted(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	if session.PaymentStatus != "paid" {
		c.JSON(http.StatusOK, gin.H{"message": "Session completed without payment, ignored"})
		return
	}

	// The checkout session carries the order id as client reference
	orderID := session.ClientReferenceID
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ClientReferenceID"})
		return
	}

	var order models.Order
	if err := db.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found for this session"})
		return
	}

	if order.PaidAt != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Order already marked as paid"})
		return
	}

	now := scheduling.Now()
	result := db.DB.Model(&models.Order{}).
		Where("id = ? AND paid_at IS NULL", orderID).
		Update("paid_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking the order as paid"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Order already marked as paid"})
		return
	}

	utils.LogSuccess("Order " + orderID + " marked as paid")
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as paid"})
}
