package requests

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

// EffectivePauses loads the pause windows currently applying to a
// subscription: approved pauses minus approved withdraws, derived on every
// call and never cached in the request rows.
func EffectivePauses(subscriptionID string) ([]scheduling.DateRange, error) {
	var pauses []models.PauseRequest
	if err := db.DB.Where("subscription_id = ? AND status = ?", subscriptionID, models.RequestApproved).Find(&pauses).Error; err != nil {
		return nil, err
	}
	if len(pauses) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(pauses))
	for _, p := range pauses {
		ids = append(ids, p.ID)
	}

	var withdraws []models.WithdrawPauseRequest
	if err := db.DB.Where("pause_request_id IN ? AND status = ?", ids, models.RequestApproved).Find(&withdraws).Error; err != nil {
		return nil, err
	}

	return scheduling.EffectivePauseRanges(pauses, withdraws), nil
}

// @Summary Submit a pause request
// @Description Ask to pause a subscription over an inclusive date range. The request stays pending until an admin decides it.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body models.PauseRequestCreate true "Pause range"
// @Security BearerAuth
// @Success 201 {object} models.PauseRequest
// @Failure 400 {object} utils.Response "error: Invalid input"
// @Failure 404 {object} utils.Response "error: Subscription not found"
// @Failure 422 {object} utils.Response "error: Not eligible, code: reason"
// @Router /subscriptions/{id}/pause-requests [post]
func SubmitPauseRequest(c *gin.Context) {
	subscriptionID := c.Param("id")

	var input models.PauseRequestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		utils.SendError(c, http.StatusBadRequest, "The end date must not be before the start date")
		return
	}

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", subscriptionID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	var pendingCount int64
	if err := db.DB.Model(&models.PauseRequest{}).
		Where("subscription_id = ? AND status = ?", subscriptionID, models.RequestPending).
		Count(&pendingCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error checking pending pause requests")
		return
	}

	var nextActive *models.Delivery
	var next models.Delivery
	err = db.DB.Where("subscription_id = ? AND status NOT IN ?", subscriptionID,
		[]models.DeliveryStatus{models.DeliveryDelivered, models.DeliverySkipped}).
		Order("delivery_date ASC").
		First(&next).Error
	if err == nil {
		nextActive = &next
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error loading the next delivery")
		return
	}

	if check := scheduling.CheckPause(pendingCount > 0, nextActive, utils.PauseCutoff(), scheduling.Now()); check != nil {
		utils.SendNotEligible(c, http.StatusUnprocessableEntity, check.Code, check.Message)
		return
	}

	request := models.PauseRequest{
		SubscriptionID: subscriptionID,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         models.RequestPending,
		Reason:         input.Reason,
	}
	if err := db.DB.Create(&request).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating the pause request: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary Submit a skip request
// @Description Ask to skip a single delivery. Same-day only and subject to the cutoff window.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Delivery ID"
// @Param request body models.SkipRequestCreate false "Optional reason"
// @Security BearerAuth
// @Success 201 {object} models.SkipRequest
// @Failure 404 {object} utils.Response "error: Delivery not found"
// @Failure 422 {object} utils.Response "error: Not eligible, code: reason"
// @Router /deliveries/{id}/skip-requests [post]
func SubmitSkipRequest(c *gin.Context) {
	deliveryID := c.Param("id")

	var input models.SkipRequestCreate
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	var delivery models.Delivery
	if err := db.DB.First(&delivery, "id = ?", deliveryID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Delivery not found")
		return
	}

	var pendingCount int64
	if err := db.DB.Model(&models.SkipRequest{}).
		Where("delivery_id = ? AND status = ?", deliveryID, models.RequestPending).
		Count(&pendingCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error checking pending skip requests")
		return
	}

	var pauses []scheduling.DateRange
	if delivery.SubscriptionID != nil {
		var err error
		pauses, err = EffectivePauses(*delivery.SubscriptionID)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Error loading pause ranges")
			return
		}
	}

	if check := scheduling.CheckSkip(delivery, pendingCount > 0, pauses, utils.SkipCutoff(), scheduling.Now()); check != nil {
		utils.SendNotEligible(c, http.StatusUnprocessableEntity, check.Code, check.Message)
		return
	}

	request := models.SkipRequest{
		DeliveryID: deliveryID,
		Status:     models.RequestPending,
		Reason:     input.Reason,
	}
	if err := db.DB.Create(&request).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating the skip request: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary Submit a withdraw request for an approved pause
// @Description Ask to cancel an approved pause. The pause row itself is never edited; reconciliation happens at read time.
// @Tags requests
// @Produce json
// @Param id path string true "Pause request ID"
// @Security BearerAuth
// @Success 201 {object} models.WithdrawPauseRequest
// @Failure 404 {object} utils.Response "error: Pause request not found"
// @Failure 422 {object} utils.Response "error: Not eligible, code: reason"
// @Router /pause-requests/{id}/withdraw-requests [post]
func SubmitWithdrawPauseRequest(c *gin.Context) {
	pauseRequestID := c.Param("id")

	var pause models.PauseRequest
	if err := db.DB.First(&pause, "id = ?", pauseRequestID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Pause request not found")
		return
	}

	var pendingCount int64
	if err := db.DB.Model(&models.WithdrawPauseRequest{}).
		Where("pause_request_id = ? AND status = ?", pauseRequestID, models.RequestPending).
		Count(&pendingCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error checking pending withdraw requests")
		return
	}

	if check := scheduling.CheckWithdraw(pause, pendingCount > 0); check != nil {
		utils.SendNotEligible(c, http.StatusUnprocessableEntity, check.Code, check.Message)
		return
	}

	request := models.WithdrawPauseRequest{
		PauseRequestID: pauseRequestID,
		Status:         models.RequestPending,
	}
	if err := db.DB.Create(&request).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating the withdraw request: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary Decide a request
// @Description Approve or decline a pending pause, skip or withdraw request. A decision is terminal. Approving a skip marks the target delivery SKIPPED.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param decision body models.RequestDecision true "Request type and decision"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "request: decided request"
// @Failure 400 {object} utils.Response "error: Invalid input"
// @Failure 404 {object} utils.Response "error: Request not found"
// @Failure 409 {object} utils.Response "error: Already decided"
// @Router /requests/{id}/decision [put]
func DecideRequest(c *gin.Context) {
	requestID := c.Param("id")

	var input models.RequestDecision
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Decision != models.RequestApproved && input.Decision != models.RequestDeclined {
		utils.SendError(c, http.StatusBadRequest, "Decision must be APPROVED or DECLINED")
		return
	}

	switch input.Type {
	case "pause":
		decidePause(c, requestID, input.Decision)
	case "skip":
		decideSkip(c, requestID, input.Decision)
	case "withdraw":
		decideWithdraw(c, requestID, input.Decision)
	default:
		utils.SendError(c, http.StatusBadRequest, "Request type must be pause, skip or withdraw")
	}
}

func decidePause(c *gin.Context, requestID string, decision models.RequestStatus) {
	var request models.PauseRequest
	if err := db.DB.First(&request, "id = ?", requestID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Pause request not found")
		return
	}

	if !decideOnce(c, db.DB.Model(&models.PauseRequest{}), requestID, decision) {
		return
	}

	request.Status = decision
	utils.LogSuccessWithUser(c.GetString("user_id"), "Pause request "+requestID+" decided: "+string(decision))
	c.JSON(http.StatusOK, gin.H{"request": request})
}

var (
	errAlreadyDecided     = errors.New("request has already been decided")
	errDeliveryNotPending = errors.New("delivery is no longer pending")
)

func decideSkip(c *gin.Context, requestID string, decision models.RequestStatus) {
	var request models.SkipRequest
	if err := db.DB.First(&request, "id = ?", requestID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Skip request not found")
		return
	}

	if request.Status != models.RequestPending {
		utils.SendError(c, http.StatusConflict, "Request has already been decided")
		return
	}

	if decision != models.RequestApproved {
		if !decideOnce(c, db.DB.Model(&models.SkipRequest{}), requestID, decision) {
			return
		}
		request.Status = decision
		utils.LogSuccessWithUser(c.GetString("user_id"), "Skip request "+requestID+" decided: "+string(decision))
		c.JSON(http.StatusOK, gin.H{"request": request})
		return
	}

	// Approving a skip marks the delivery SKIPPED in the same transaction as
	// the request decision. If either compare-and-set loses to a concurrent
	// writer, everything rolls back: a delivery is never left SKIPPED by a
	// request whose final status is not APPROVED.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Delivery{}).
			Where("id = ? AND status = ?", request.DeliveryID, models.DeliveryPending).
			Updates(map[string]interface{}{
				"status":                models.DeliverySkipped,
				"skipped_by_request_id": requestID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errDeliveryNotPending
		}

		result = tx.Model(&models.SkipRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestPending).
			Update("status", decision)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errAlreadyDecided
		}

		logEntry := models.DeliveryStatusLog{
			DeliveryID: request.DeliveryID,
			FromStatus: models.DeliveryPending,
			ToStatus:   models.DeliverySkipped,
			Actor:      c.GetString("user_id"),
		}
		return tx.Create(&logEntry).Error
	})
	switch {
	case errors.Is(err, errDeliveryNotPending):
		utils.SendError(c, http.StatusConflict, "Only pending deliveries can be skipped")
		return
	case errors.Is(err, errAlreadyDecided):
		utils.SendError(c, http.StatusConflict, "Request has already been decided")
		return
	case err != nil:
		utils.SendError(c, http.StatusInternalServerError, "Error deciding the skip request: "+err.Error())
		return
	}

	request.Status = decision
	utils.LogSuccessWithUser(c.GetString("user_id"), "Skip request "+requestID+" decided: "+string(decision))
	c.JSON(http.StatusOK, gin.H{"request": request})
}

func decideWithdraw(c *gin.Context, requestID string, decision models.RequestStatus) {
	var request models.WithdrawPauseRequest
	if err := db.DB.First(&request, "id = ?", requestID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Withdraw request not found")
		return
	}

	if !decideOnce(c, db.DB.Model(&models.WithdrawPauseRequest{}), requestID, decision) {
		return
	}

	request.Status = decision
	utils.LogSuccessWithUser(c.GetString("user_id"), "Withdraw request "+requestID+" decided: "+string(decision))
	c.JSON(http.StatusOK, gin.H{"request": request})
}

// decideOnce writes the decision conditioned on the request still being
// pending. Losing the condition means another admin decided first.
func decideOnce(c *gin.Context, model *gorm.DB, requestID string, decision models.RequestStatus) bool {
	result := model.
		Where("id = ? AND status = ?", requestID, models.RequestPending).
		Update("status", decision)
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deciding the request: "+result.Error.Error())
		return false
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusConflict, "Request has already been decided")
		return false
	}
	return true
}

// @Summary List a subscription's requests
// @Description Retrieve the pause, withdraw and skip requests tied to a subscription
// @Tags requests
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "pauseRequests, withdrawRequests, skipRequests"
// @Failure 404 {object} utils.Response "error: Subscription not found"
// @Router /subscriptions/{id}/requests [get]
func ListSubscriptionRequests(c *gin.Context) {
	subscriptionID := c.Param("id")

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", subscriptionID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	var pauseRequests []models.PauseRequest
	if err := db.DB.Where("subscription_id = ?", subscriptionID).Order("created_at DESC").Find(&pauseRequests).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error loading pause requests")
		return
	}

	var withdrawRequests []models.WithdrawPauseRequest
	if len(pauseRequests) > 0 {
		ids := make([]string, 0, len(pauseRequests))
		for _, p := range pauseRequests {
			ids = append(ids, p.ID)
		}
		if err := db.DB.Where("pause_request_id IN ?", ids).Find(&withdrawRequests).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Error loading withdraw requests")
			return
		}
	}

	var skipRequests []models.SkipRequest
	subQuery := db.DB.Model(&models.Delivery{}).Select("id").Where("subscription_id = ?", subscriptionID)
	if err := db.DB.Where("delivery_id IN (?)", subQuery).Order("created_at DESC").Find(&skipRequests).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error loading skip requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pauseRequests":    pauseRequests,
		"withdrawRequests": withdrawRequests,
		"skipRequests":     skipRequests,
	})
}
