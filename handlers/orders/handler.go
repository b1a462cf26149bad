package orders

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

var errAlreadyMoved = errors.New("order has already been moved to kitchen")

// @Summary List orders
// @Description Retrieve all orders with their line items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /orders [get]
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	result := db.DB.Preload("Items").Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get an order
// @Description Retrieve one order by its ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Security BearerAuth
// @Success 200 {object} models.Order
// @Failure 404 {object} map[string]string "error: Order not found"
// @Router /orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := db.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Decide an order's acceptance
// @Description Confirm or decline a pending order. The decision is terminal and becomes permanently locked once the order has been moved to kitchen.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param acceptance body models.OrderAcceptanceUpdate true "CONFIRMED or DECLINED"
// @Security BearerAuth
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Order not found"
// @Failure 409 {object} map[string]string "error: Already decided / locked / not paid"
// @Router /orders/{id}/acceptance [put]
func SetOrderAcceptance(c *gin.Context) {
	orderID := c.Param("id")

	var input models.OrderAcceptanceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Acceptance != models.OrderConfirmed && input.Acceptance != models.OrderDeclined {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acceptance must be CONFIRMED or DECLINED"})
		return
	}

	var order models.Order
	if err := db.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if order.MovedToKitchenAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order acceptance is locked: deliveries have been generated"})
		return
	}
	if order.Acceptance != models.OrderPendingReview {
		c.JSON(http.StatusConflict, gin.H{"error": "Order acceptance has already been decided"})
		return
	}
	if input.Acceptance == models.OrderConfirmed && order.PaidAt == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has not been paid yet"})
		return
	}

	result := db.DB.Model(&models.Order{}).
		Where("id = ? AND acceptance = ? AND moved_to_kitchen_at IS NULL", orderID, models.OrderPendingReview).
		Update("acceptance", input.Acceptance)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the order: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order acceptance has already been decided"})
		return
	}

	order.Acceptance = input.Acceptance
	utils.LogSuccessWithUser(c.GetString("user_id"), "Order "+orderID+" acceptance set to "+string(input.Acceptance))
	c.JSON(http.StatusOK, order)
}

// @Summary Move an order to kitchen
// @Description Generate the initial delivery records for a confirmed order: one record per one-off item, a subscription plus its first delivery per recurring item. One-way; the acceptance decision is locked afterwards.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "order, deliveriesCreated"
// @Failure 404 {object} map[string]string "error: Order not found"
// @Failure 409 {object} map[string]string "error: Not confirmed / already moved"
// @Router /orders/{id}/kitchen [post]
func MoveOrderToKitchen(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := db.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if order.Acceptance != models.OrderConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has not been confirmed"})
		return
	}
	if order.MovedToKitchenAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been moved to kitchen"})
		return
	}

	// The one-shot lock and the generated rows commit together: a second
	// caller loses the timestamp compare-and-set and never generates
	// duplicates, and a row that cannot be created rolls everything back so
	// the order stays movable instead of silently losing deliveries.
	now := scheduling.Now()
	created := 0
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ? AND acceptance = ? AND moved_to_kitchen_at IS NULL", orderID, models.OrderConfirmed).
			Update("moved_to_kitchen_at", now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errAlreadyMoved
		}

		for _, item := range order.Items {
			firstDate := firstDeliveryDate(item.StartDate, now, item.Recurring)

			var subscriptionID *string
			if item.Recurring {
				subscription := models.Subscription{
					UserID:        order.UserID,
					OrderID:       order.ID,
					OrderItemID:   item.ID,
					Kind:          item.Kind,
					Cadence:       item.Cadence,
					StartDate:     item.StartDate,
					TotalServings: utils.ServingsForCadence(item.Cadence),
					Status:        models.SubscriptionActive,
				}
				if err := tx.Create(&subscription).Error; err != nil {
					return err
				}
				subscriptionID = &subscription.ID
			}

			delivery := models.Delivery{
				SubscriptionID: subscriptionID,
				OrderID:        order.ID,
				DeliveryDate:   firstDate,
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
			if err := tx.Create(&delivery).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if errors.Is(err, errAlreadyMoved) {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been moved to kitchen"})
		return
	}
	if err != nil {
		utils.LogError(err, "Error generating the deliveries for order "+orderID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating the deliveries: " + err.Error()})
		return
	}

	order.MovedToKitchenAt = &now
	utils.LogSuccessWithUser(c.GetString("user_id"), "Order "+orderID+" moved to kitchen")
	c.JSON(http.StatusOK, gin.H{
		"order":             order,
		"deliveriesCreated": created,
	})
}

// firstDeliveryDate picks the date of the item's first delivery record.
// One-off items ship on the first weekday at or after their start date;
// recurring items begin the weekday after it, matching the projector's
// forward walk. Never before today.
func firstDeliveryDate(startDate, now time.Time, recurring bool) time.Time {
	date := scheduling.DateOf(startDate)
	today := scheduling.DateOf(now)
	if date.Before(today) {
		date = today
	}
	if recurring {
		date = date.AddDate(0, 0, 1)
	}
	for !scheduling.IsDeliveryDay(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
