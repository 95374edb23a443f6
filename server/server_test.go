package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfg-nyu/opcalc/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	router := gin.New()
	server.NewHandler(log).RegisterRoutes(router)
	return router
}

func postPrice(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/v1/options/price", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPrice_ReferenceScenario(t *testing.T) {
	router := newTestRouter()

	rec := postPrice(t, router, `{
		"time_curr": 1606780800,
		"time_maturity": 1610668800,
		"asset_price": 100.0,
		"strike": 105.0,
		"interest": 0.005,
		"volatility": 0.23
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.InDelta(t, 1.402645442104692, resp["call_value"], 1e-9)
	assert.InDelta(t, 6.338100538847982, resp["put_value"], 1e-9)
	assert.InDelta(t, 0.2890519431809007, resp["call_delta"], 1e-9)
	assert.InDelta(t, -0.7109480568190993, resp["put_delta"], 1e-9)
	assert.InDelta(t, 0.042322310279, resp["call_gamma"], 1e-9)
	assert.InDelta(t, 0.120015544350, resp["call_vega"], 1e-9)
	assert.InDelta(t, -0.031151773420, resp["call_theta"], 1e-9)
	assert.InDelta(t, 3888000.0/31536000.0, resp["time_to_maturity"], 1e-15)
	assert.Equal(t, resp["call_vega"], resp["put_vega"])
}

func TestPrice_MissingStepIsNamed(t *testing.T) {
	router := newTestRouter()

	rec := postPrice(t, router, `{
		"time_curr": 1606780800,
		"time_maturity": 1610668800,
		"asset_price": 100.0,
		"strike": 105.0,
		"interest": 0.005
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "WithVolatility", resp["missing_step"])
	assert.Contains(t, resp["error"], "WithVolatility")
}

func TestPrice_NonFiniteValuesSerialized(t *testing.T) {
	router := newTestRouter()

	// Negative strike drives the whole result set to NaN; the service must
	// forward that rather than reject or clamp it.
	rec := postPrice(t, router, `{
		"time_curr": 1606780800,
		"time_maturity": 1610668800,
		"asset_price": 100.0,
		"strike": -105.0,
		"interest": 0.005,
		"volatility": 0.23
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "NaN", resp["call_value"])
	assert.Equal(t, "NaN", resp["put_value"])
}

func TestPrice_MalformedBody(t *testing.T) {
	router := newTestRouter()

	rec := postPrice(t, router, `{"strike": "a hundred"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
