package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherServiceTemperature(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":27.5}}`))
	}))
	defer server.Close()

	svc := NewWeatherService("secret", server.URL, time.Second, nil)
	temp, err := svc.Temperature(context.Background(), "Berlin")
	require.NoError(t, err)
	assert.Equal(t, 27.5, temp)
}

func TestWeatherServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "unknown city", status: http.StatusNotFound, payload: `{"cod":"404","message":"city not found"}`},
		{name: "missing temperature", status: http.StatusOK, payload: `{"main":{}}`},
		{name: "garbage", status: http.StatusOK, payload: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			svc := NewWeatherService("key", server.URL, time.Second, nil)
			_, err := svc.Temperature(context.Background(), "Atlantis")
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)

			temp, fallback := ResolveTemperature(context.Background(), svc, "Atlantis", time.Second)
			assert.Equal(t, DefaultTemperature, temp)
			assert.True(t, fallback)
		})
	}
}

func TestWeatherServiceEmptyCity(t *testing.T) {
	svc := NewWeatherService("key", "http://127.0.0.1:0", time.Second, nil)
	_, err := svc.Temperature(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
