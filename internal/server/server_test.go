package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
)

const gatewayKey = "gateway-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(gatewayKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		ServerHost:      "localhost",
		ServerPort:      "8080",
		DBDriver:        config.DriverSQLite,
		JWTSecret:       "test-secret",
		GatewayKeyHash:  string(hash),
		Timezone:        "UTC",
		UpstreamTimeout: time.Second,
		// Unroutable, so lookups fail fast and fall back.
		OpenFoodFactsURL: "http://127.0.0.1:1/search",
	}
	srv, err := New(cfg, Dependencies{DB: testhelpers.SetupSQLiteDatabase(t)})
	require.NoError(t, err)
	return srv
}

func call(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, srv *Server, userID int64) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]interface{}{"user_id": userID, "username": "anna"}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gateway-Key", gatewayKey)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := call(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEndDay(t *testing.T) {
	srv := newTestServer(t)
	token := issueToken(t, srv, 555)

	// Nothing works before the profile exists.
	w := call(t, srv, http.MethodPost, "/api/v1/water/quick/250", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, srv, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"weight":         70,
		"height":         175,
		"age":            30,
		"gender":         "male",
		"activity_level": "moderate",
		"city":           "Moscow",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile struct {
		WaterGoal          float64 `json:"water_goal"`
		TemperatureDefault bool    `json:"temperature_default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, 2500.0, profile.WaterGoal)
	assert.True(t, profile.TemperatureDefault)

	w = call(t, srv, http.MethodPost, "/api/v1/water/quick/250", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = call(t, srv, http.MethodPost, "/api/v1/water", token, map[string]interface{}{"amount": 500})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, srv, http.MethodGet, "/api/v1/food/search?q=banana", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		ID    string `json:"id"`
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Items)
	assert.Equal(t, "Banana", session.Items[0].Name)

	w = call(t, srv, http.MethodPost, "/api/v1/food", token, map[string]interface{}{"search_id": session.ID, "index": 0, "grams": 150})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(t, srv, http.MethodPost, "/api/v1/workouts", token, map[string]interface{}{"workout_type": "running", "duration": 45})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, srv, http.MethodGet, "/api/v1/progress/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report struct {
		WaterToday       float64 `json:"water_today"`
		WaterProgressPct float64 `json:"water_progress_pct"`
		CaloriesConsumed float64 `json:"calories_consumed"`
		CaloriesBurned   float64 `json:"calories_burned"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 750.0, report.WaterToday)
	assert.InDelta(t, 30.0, report.WaterProgressPct, 1e-9)
	assert.InDelta(t, 133.5, report.CaloriesConsumed, 1e-9)
	assert.InDelta(t, 420.0, report.CaloriesBurned, 1e-9)

	w = call(t, srv, http.MethodGet, "/api/v1/progress/weekly", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var weekly struct {
		Days []json.RawMessage `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weekly))
	assert.Len(t, weekly.Days, 7)

	w = call(t, srv, http.MethodGet, "/api/v1/recommendations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/progress/weekly/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
