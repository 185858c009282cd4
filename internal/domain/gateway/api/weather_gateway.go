package api

import (
	"context"

	"weather-etl/internal/domain/model/external"
)

// WeatherGateway defines the interface for the current weather external API
type WeatherGateway interface {
	// GetCurrentWeather fetches the current conditions for the configured location.
	// Any status other than 200, including other 2xx codes, and transport faults wrap
	// model.ErrUpstreamUnavailable; an undecodable or incomplete 200 body wraps model.ErrMalformedPayload.
	GetCurrentWeather(ctx context.Context, apiKey string) (*external.CurrentWeatherResponse, error)
}
