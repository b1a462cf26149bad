package ping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/testutils"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

func TestHandlePing(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/ping", New().HandlePing)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.Response
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
}
