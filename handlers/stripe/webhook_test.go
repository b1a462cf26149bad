package stripe

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestStripeWebhookHandler_MissingSecret(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	r := testutils.SetupTestRouter()
	r.POST("/webhook", StripeWebhookHandler)

	req, _ := http.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{}`))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestStripeWebhookHandler_BadSignature(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	r := testutils.SetupTestRouter()
	r.POST("/webhook", StripeWebhookHandler)

	req, _ := http.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
