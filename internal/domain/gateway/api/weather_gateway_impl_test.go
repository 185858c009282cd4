package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-etl/internal/domain/model"
	pkghttp "weather-etl/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const romePayload = `{
  "name": "Rome",
  "dt": 1760778000,
  "main": {"temp": 21.5, "humidity": 60, "pressure": 1012},
  "wind": {"speed": 3.2},
  "weather": [{"main": "Clear", "description": "clear sky"}]
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL+"/data/2.5/weather", WeatherQuery{Location: "Rome,IT"}, pkghttp.ClientOptions{})
}

func TestGetCurrentWeather_Success(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Rome,IT", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "secret-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(romePayload))
	})

	response, err := gateway.GetCurrentWeather(context.Background(), "secret-key")

	require.NoError(t, err)
	assert.Equal(t, 21.5, *response.Main.Temp)
	assert.Equal(t, int64(60), *response.Main.Humidity)
	assert.Equal(t, int64(1012), *response.Main.Pressure)
	assert.Equal(t, 3.2, *response.Wind.Speed)
	assert.Equal(t, "clear sky", response.Weather[0].Description)
}

func TestGetCurrentWeather_ErrorStatusIsUpstreamUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
		})

		response, err := gateway.GetCurrentWeather(context.Background(), "YOUR_API_KEY")

		assert.Nil(t, response)
		assert.ErrorIs(t, err, model.ErrUpstreamUnavailable, "status %d", status)
	}
}

func TestGetCurrentWeather_OnlyStatusOKIsAccepted(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusAccepted, http.StatusNonAuthoritativeInfo, http.StatusNoContent} {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(romePayload))
		})

		response, err := gateway.GetCurrentWeather(context.Background(), "secret-key")

		assert.Nil(t, response, "status %d", status)
		assert.ErrorIs(t, err, model.ErrUpstreamUnavailable, "status %d", status)
		assert.NotErrorIs(t, err, model.ErrMalformedPayload, "status %d", status)
	}
}

func TestGetCurrentWeather_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	gateway := NewWeatherGateway(url, WeatherQuery{Location: "Rome,IT"}, pkghttp.ClientOptions{})
	_, err := gateway.GetCurrentWeather(context.Background(), "key")

	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}

func TestGetCurrentWeather_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "missing main", body: `{"wind": {"speed": 1}, "weather": [{"description": "x"}]}`},
		{name: "missing temperature", body: `{"main": {"humidity": 1, "pressure": 2}, "wind": {"speed": 1}, "weather": [{"description": "x"}]}`},
		{name: "missing wind speed", body: `{"main": {"temp": 1, "humidity": 1, "pressure": 2}, "wind": {}, "weather": [{"description": "x"}]}`},
		{name: "empty weather list", body: `{"main": {"temp": 1, "humidity": 1, "pressure": 2}, "wind": {"speed": 1}, "weather": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			response, err := gateway.GetCurrentWeather(context.Background(), "key")

			assert.Nil(t, response)
			assert.ErrorIs(t, err, model.ErrMalformedPayload)
		})
	}
}

func TestGetCurrentWeather_ZeroReadingsAreValid(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main": {"temp": 0, "humidity": 0, "pressure": 0}, "wind": {"speed": 0}, "weather": [{"description": ""}]}`))
	})

	response, err := gateway.GetCurrentWeather(context.Background(), "key")

	require.NoError(t, err)
	assert.Zero(t, *response.Main.Temp)
}
