package deliveries

import (
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
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func deliveryRows(mock sqlmock.Sqlmock, status models.DeliveryStatus, deliveryDate time.Time) *sqlmock.Rows {
	return mock.NewRows([]string{"id", "order_id", "delivery_date", "delivery_time", "status"}).
		AddRow("delivery-uuid", "order-uuid", deliveryDate, "18:00", string(status))
}

func TestAdvanceDeliveryStatus_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)
	testutils.FreezeClock(t, now)

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE id = \$1`).
		WithArgs("delivery-uuid", 1).
		WillReturnRows(deliveryRows(mock, models.DeliveryPending, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "deliveries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "delivery_status_logs"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("log-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/deliveries/:id/status", AdvanceDeliveryStatus)

	req, _ := http.NewRequest(http.MethodPut, "/deliveries/delivery-uuid/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var delivery models.Delivery
	json.Unmarshal(resp.Body.Bytes(), &delivery)
	assert.Equal(t, models.DeliveryCooking, delivery.Status)
}

func TestAdvanceDeliveryStatus_TerminalStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)
	testutils.FreezeClock(t, now)

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE id = \$1`).
		WithArgs("delivery-uuid", 1).
		WillReturnRows(deliveryRows(mock, models.DeliveryDelivered, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))

	r := testutils.SetupTestRouter()
	r.PUT("/deliveries/:id/status", AdvanceDeliveryStatus)

	req, _ := http.NewRequest(http.MethodPut, "/deliveries/delivery-uuid/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceDeliveryStatus_WrongDate(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)
	testutils.FreezeClock(t, now)

	// Delivery due tomorrow: the admin may not advance it today
	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE id = \$1`).
		WithArgs("delivery-uuid", 1).
		WillReturnRows(deliveryRows(mock, models.DeliveryPending, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))

	r := testutils.SetupTestRouter()
	r.PUT("/deliveries/:id/status", AdvanceDeliveryStatus)

	req, _ := http.NewRequest(http.MethodPut, "/deliveries/delivery-uuid/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceDeliveryStatus_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE id = \$1`).
		WithArgs("unknown-uuid", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.PUT("/deliveries/:id/status", AdvanceDeliveryStatus)

	req, _ := http.NewRequest(http.MethodPut, "/deliveries/unknown-uuid/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAdvanceDeliveryStatus_LostRace(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)
	testutils.FreezeClock(t, now)

	mock.ExpectQuery(`SELECT \* FROM "deliveries" WHERE id = \$1`).
		WithArgs("delivery-uuid", 1).
		WillReturnRows(deliveryRows(mock, models.DeliveryPending, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))

	// Another admin advanced the delivery between the read and the write
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "deliveries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/deliveries/:id/status", AdvanceDeliveryStatus)

	req, _ := http.NewRequest(http.MethodPut, "/deliveries/delivery-uuid/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestListDeliveries_InvalidDate(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.GET("/deliveries", ListDeliveries)

	req, _ := http.NewRequest(http.MethodGet, "/deliveries?from=not-a-date", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
