package orders

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/db"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/requests"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/scheduling"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

// MaterializeUpcoming is the day-ahead collaborator of the calendar
// projector: moveToKitchen only creates the first delivery of a recurring
// item, this endpoint (hit by a daily cron) promotes the projector's planned
// placeholders falling within the lookahead window into real delivery rows.
// Idempotent: dates that already have a row are emitted by the projector as
// real entries, not placeholders, so they are never duplicated.
//
// @Summary Materialize upcoming deliveries
// @Description Promote projected placeholder deliveries within the lookahead window into real delivery records for every active subscription
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "deliveriesCreated"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /kitchen/materialize [post]
func MaterializeUpcoming(c *gin.Context) {
	var subscriptions []models.Subscription
	if err := db.DB.Where("status = ?", models.SubscriptionActive).Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := scheduling.Today()
	horizon := today.AddDate(0, 0, utils.MaterializeDaysAhead())
	created := 0

	for _, subscription := range subscriptions {
		var deliveredCount int64
		if err := db.DB.Model(&models.Delivery{}).
			Where("subscription_id = ? AND status = ?", subscription.ID, models.DeliveryDelivered).
			Count(&deliveredCount).Error; err != nil {
			utils.LogError(err, "Error counting deliveries for subscription "+subscription.ID)
			continue
		}

		var real []models.Delivery
		if err := db.DB.Where("subscription_id = ?", subscription.ID).Find(&real).Error; err != nil {
			utils.LogError(err, "Error loading deliveries for subscription "+subscription.ID)
			continue
		}

		pauses, err := requests.EffectivePauses(subscription.ID)
		if err != nil {
			utils.LogError(err, "Error loading pause ranges for subscription "+subscription.ID)
			continue
		}

		var item models.OrderItem
		if err := db.DB.First(&item, "id = ?", subscription.OrderItemID).Error; err != nil {
			utils.LogError(err, "Origin order item missing for subscription "+subscription.ID)
			continue
		}

		projection := scheduling.ProjectUpcoming(subscription, int(deliveredCount), pauses, real, 0, today)
		for _, entry := range projection {
			if !entry.Planned || entry.Date.After(horizon) {
				continue
			}

			subscriptionID := subscription.ID
			delivery := models.Delivery{
				SubscriptionID: &subscriptionID,
				OrderID:        subscription.OrderID,
				DeliveryDate:   entry.Date,
				DeliveryTime:   item.DeliveryTime,
				Status:         models.DeliveryPending,
				Items: []models.DeliveryItem{
					{
						OrderItemID: item.ID,
						Title:       item.Title,
						Quantity:    item.Quantity,
					},
				},
			}
			if err := db.DB.Create(&delivery).Error; err != nil {
				utils.LogError(err, "Error materializing the delivery for subscription "+subscription.ID)
				continue
			}
			created++
		}
	}

	utils.LogSuccess("Materialized upcoming deliveries")
	c.JSON(http.StatusOK, gin.H{"deliveriesCreated": created})
}
