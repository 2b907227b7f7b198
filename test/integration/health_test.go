package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"finvest_backend/test/helpers"
)

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"storageConnected":true`)
}
