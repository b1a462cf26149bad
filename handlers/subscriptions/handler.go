package subscriptions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/db"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/handlers/requests"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/scheduling"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

// @Summary List subscriptions
// @Description Retrieve all subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions [get]
func GetAllSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription
	result := db.DB.Order("created_at DESC").Find(&subscriptions)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// @Summary Get a subscription
// @Description Retrieve one subscription by its ID
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /subscriptions/{id} [get]
func GetSubscriptionByID(c *gin.Context) {
	subscriptionID := c.Param("id")

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", subscriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// @Summary Project the upcoming deliveries
// @Description Compute the next planned deliveries for a subscription from its remaining servings, effective pauses and existing delivery records. A pure view, recomputed on every call.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Param count query int false "Maximum number of entries"
// @Security BearerAuth
// @Success 200 {array} scheduling.ProjectedDelivery
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions/{id}/upcoming [get]
func GetUpcomingDeliveries(c *gin.Context) {
	subscriptionID := c.Param("id")

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", subscriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	// A subscription paused as a whole has no upcoming schedule until an
	// admin resumes it.
	if subscription.Status == models.SubscriptionPaused {
		c.JSON(http.StatusOK, []scheduling.ProjectedDelivery{})
		return
	}

	count := 0
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
			return
		}
		count = parsed
	}

	var deliveredCount int64
	if err := db.DB.Model(&models.Delivery{}).
		Where("subscription_id = ? AND status = ?", subscriptionID, models.DeliveryDelivered).
		Count(&deliveredCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting delivered servings"})
		return
	}

	var real []models.Delivery
	if err := db.DB.Preload("Items").Where("subscription_id = ?", subscriptionID).Find(&real).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading deliveries"})
		return
	}

	pauses, err := requests.EffectivePauses(subscriptionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading pause ranges"})
		return
	}

	projection := scheduling.ProjectUpcoming(subscription, int(deliveredCount), pauses, real, count, scheduling.Today())
	if projection == nil {
		projection = []scheduling.ProjectedDelivery{}
	}

	c.JSON(http.StatusOK, projection)
}

// @Summary Pause or resume a subscription
// @Description Flip the whole-subscription operational status. The common path for pausing specific dates is a pause request, this is the rare admin path.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param status body models.SubscriptionStatusUpdate true "ACTIVE or PAUSED"
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /subscriptions/{id}/status [put]
func UpdateSubscriptionStatus(c *gin.Context) {
	subscriptionID := c.Param("id")

	var input models.SubscriptionStatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Status != models.SubscriptionActive && input.Status != models.SubscriptionPaused {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be ACTIVE or PAUSED"})
		return
	}

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", subscriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	if err := db.DB.Model(&subscription).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription: " + err.Error()})
		return
	}

	subscription.Status = input.Status
	utils.LogSuccessWithUser(c.GetString("user_id"), "Subscription "+subscriptionID+" set to "+string(input.Status))
	c.JSON(http.StatusOK, subscription)
}
