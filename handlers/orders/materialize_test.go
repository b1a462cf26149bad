package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/testutils"
)

func TestMaterializeUpcoming_NoActiveSubscriptions(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE status = \$1`).
		WithArgs(string(models.SubscriptionActive)).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.POST("/kitchen/materialize", MaterializeUpcoming)

	req, _ := http.NewRequest(http.MethodPost, "/kitchen/materialize", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, float64(0), response["deliveriesCreated"])
}

func TestMaterializeUpcoming_PromotesTomorrowsPlaceholder(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Monday: the default one-day horizon covers Tuesday
	testutils.FreezeClock(t, time.Date(2024, 6, 10, 6, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE status = \$1`).
		WithArgs(string(models.SubscriptionActive)).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "order_id", "order_item_id", "kind", "cadence", "start_date", "total_servings", "status"}).
			AddRow("sub-uuid", "user-uuid", "order-uuid", "item-uuid", "mealPack", models.WeeklyCadence, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), 5, string(models.SubscriptionActive)))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "deliveries"`).
		WithArgs("sub-uuid", string(models.DeliveryDelivered)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE subscription_id = \$1`).
		WithArgs("sub-uuid").
		WillReturnRows(mock.NewRows([]string{"id", "subscription_id", "delivery_date", "status"}))

	mock.ExpectQuery(`SELECT \* FROM "pause_requests"`).
		WithArgs("sub-uuid", string(models.RequestApproved)).
		WillReturnRows(mock.NewRows([]string{"id"}))

	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE id = \$1`).
		WithArgs("item-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "order_id", "title", "quantity", "kind", "delivery_time"}).
			AddRow("item-uuid", "order-uuid", "Lean Bulk Pack", 1, "mealPack", "12:00"))

	// Only Tuesday's placeholder falls inside the horizon
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "deliveries"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("delivery-uuid"))
	mock.ExpectQuery(`INSERT INTO "delivery_items"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("delivery-item-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/kitchen/materialize", MaterializeUpcoming)

	req, _ := http.NewRequest(http.MethodPost, "/kitchen/materialize", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["deliveriesCreated"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
