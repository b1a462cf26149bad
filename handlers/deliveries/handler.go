package deliveries

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/db"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/scheduling"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

// @Summary List deliveries
// @Description Retrieve deliveries filtered by subscription or by date range
// @Tags deliveries
// @Produce json
// @Param subscriptionId query string false "Subscription ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {array} models.Delivery
// @Failure 400 {object} map[string]string "error: Invalid date"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /deliveries [get]
func ListDeliveries(c *gin.Context) {
	query := db.DB.Preload("Items").Order("delivery_date ASC")

	if subscriptionID := c.Query("subscriptionId"); subscriptionID != "" {
		query = query.Where("subscription_id = ?", subscriptionID)
	}

	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("delivery_date >= ?", fromDate)
	}

	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("delivery_date <= ?", toDate)
	}

	var deliveries []models.Delivery
	result := query.Find(&deliveries)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, deliveries)
}

// @Summary Advance a delivery status
// @Description Move a delivery one step forward in the kitchen chain (PENDING → COOKING → PACKED → OUT_FOR_DELIVERY → DELIVERED). Only allowed on the delivery's own date.
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Security BearerAuth
// @Success 200 {object} models.Delivery
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Delivery not found"
// @Failure 409 {object} map[string]string "error: Invalid transition"
// @Router /deliveries/{id}/status [put]
func AdvanceDeliveryStatus(c *gin.Context) {
	deliveryID := c.Param("id")

	var delivery models.Delivery
	if err := db.DB.First(&delivery, "id = ?", deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current := delivery.Status
	next, ok := current.Next()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Delivery is already in a terminal status"})
		return
	}

	// The lifecycle only advances on the day it is due: no mutating past or
	// future dates from the admin board.
	if !scheduling.SameDate(delivery.DeliveryDate, scheduling.Now()) {
		c.JSON(http.StatusConflict, gin.H{"error": "Delivery status can only be advanced on its delivery date"})
		return
	}

	// Optimistic compare-and-set: a concurrent admin who advanced first wins,
	// the loser gets a conflict and can re-read.
	result := db.DB.Model(&models.Delivery{}).
		Where("id = ? AND status = ?", deliveryID, current).
		Update("status", next)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating delivery: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Delivery status changed concurrently, please retry"})
		return
	}

	actor := c.GetString("user_id")
	if actor == "" {
		actor = "system"
	}
	logEntry := models.DeliveryStatusLog{
		DeliveryID: deliveryID,
		FromStatus: current,
		ToStatus:   next,
		Actor:      actor,
	}
	if err := db.DB.Create(&logEntry).Error; err != nil {
		utils.LogError(err, "Error recording the delivery status transition")
	}

	delivery.Status = next
	utils.LogSuccessWithUser(actor, "Delivery "+deliveryID+" advanced to "+string(next))
	c.JSON(http.StatusOK, delivery)
}

// @Summary Upload a proof-of-delivery photo
// @Description Attach a photo to a delivery record
// @Tags deliveries
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Delivery ID"
// @Param file formData file true "Photo (JPG, PNG, WEBP)"
// @Security BearerAuth
// @Success 200 {object} models.Delivery
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 404 {object} map[string]string "error: Delivery not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /deliveries/{id}/photo [post]
func UploadDeliveryPhoto(c *gin.Context) {
	deliveryID := c.Param("id")

	var delivery models.Delivery
	if err := db.DB.First(&delivery, "id = ?", deliveryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	url, err := utils.UploadDeliveryPhoto(deliveryID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Model(&delivery).Update("photo_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the photo URL: " + err.Error()})
		return
	}

	delivery.PhotoURL = url
	c.JSON(http.StatusOK, delivery)
}
