package subscriptions

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/scheduling"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func subscriptionRows(mock sqlmock.Sqlmock, status models.SubscriptionStatus, totalServings int) *sqlmock.Rows {
	return mock.NewRows([]string{"id", "user_id", "order_id", "kind", "cadence", "start_date", "total_servings", "status"}).
		AddRow("sub-uuid", "user-uuid", "order-uuid", "mealPack", models.WeeklyCadence, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), totalServings, string(status))
}

func TestGetUpcomingDeliveries_ProjectsRemainingServings(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Friday morning: the walk starts the following Monday
	testutils.FreezeClock(t, time.Date(2024, 6, 7, 9, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE id = \$1`).
		WithArgs("sub-uuid", 1).
		WillReturnRows(subscriptionRows(mock, models.SubscriptionActive, 5))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "deliveries"`).
		WithArgs("sub-uuid", string(models.DeliveryDelivered)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE subscription_id = \$1`).
		WithArgs("sub-uuid").
		WillReturnRows(mock.NewRows([]string{"id", "subscription_id", "order_id", "delivery_date", "delivery_time", "status"}).
			AddRow("delivery-done", "sub-uuid", "order-uuid", time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), "18:00", string(models.DeliveryDelivered)))

	mock.ExpectQuery(`SELECT \* FROM "delivery_items"`).
		WillReturnRows(mock.NewRows([]string{"id", "delivery_id"}))

	mock.ExpectQuery(`SELECT \* FROM "pause_requests"`).
		WithArgs("sub-uuid", string(models.RequestApproved)).
		WillReturnRows(mock.NewRows([]string{"id", "subscription_id", "start_date", "end_date", "status"}))

	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/:id/upcoming", GetUpcomingDeliveries)

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/sub-uuid/upcoming", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var projection []scheduling.ProjectedDelivery
	json.Unmarshal(resp.Body.Bytes(), &projection)

	// 5 servings, 1 already delivered: four planned weekdays remain
	assert.Len(t, projection, 4)
	for i, entry := range projection {
		assert.True(t, entry.Planned)
		assert.Equal(t, time.Date(2024, 6, 10+i, 0, 0, 0, 0, time.UTC), entry.Date)
	}
}

func TestGetUpcomingDeliveries_PausedSubscriptionIsEmpty(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE id = \$1`).
		WithArgs("sub-uuid", 1).
		WillReturnRows(subscriptionRows(mock, models.SubscriptionPaused, 5))

	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/:id/upcoming", GetUpcomingDeliveries)

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/sub-uuid/upcoming", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", resp.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUpcomingDeliveries_InvalidCount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE id = \$1`).
		WithArgs("sub-uuid", 1).
		WillReturnRows(subscriptionRows(mock, models.SubscriptionActive, 5))

	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/:id/upcoming", GetUpcomingDeliveries)

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/sub-uuid/upcoming?count=-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetSubscriptionByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE id = \$1`).
		WithArgs("unknown-uuid", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/:id", GetSubscriptionByID)

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/unknown-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateSubscriptionStatus_InvalidStatus(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(models.SubscriptionStatusUpdate{Status: "CANCELLED"})

	r := testutils.SetupTestRouter()
	r.PUT("/subscriptions/:id/status", UpdateSubscriptionStatus)

	req, _ := http.NewRequest(http.MethodPut, "/subscriptions/sub-uuid/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateSubscriptionStatus_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE id = \$1`).
		WithArgs("sub-uuid", 1).
		WillReturnRows(subscriptionRows(mock, models.SubscriptionActive, 5))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(models.SubscriptionStatusUpdate{Status: models.SubscriptionPaused})

	r := testutils.SetupTestRouter()
	r.PUT("/subscriptions/:id/status", UpdateSubscriptionStatus)

	req, _ := http.NewRequest(http.MethodPut, "/subscriptions/sub-uuid/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var subscription models.Subscription
	json.Unmarshal(resp.Body.Bytes(), &subscription)
	assert.Equal(t, models.SubscriptionPaused, subscription.Status)
}
