package api

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"weather-etl/internal/domain/model"
	"weather-etl/internal/domain/model/external"
	"weather-etl/pkg/http"
	"weather-etl/pkg/log"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// WeatherQuery holds the fixed query parameters sent with every request.
type WeatherQuery struct {
	Location string
	Units    string
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	query      WeatherQuery
	validate   *validator.Validate
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, query WeatherQuery, clientOptions http.ClientOptions) WeatherGateway {
	if query.Units == "" {
		query.Units = "metric"
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		query:      query,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetCurrentWeather issues a single GET with q, units and appid
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, apiKey string) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithQueryParams(map[string]string{
			"q":     w.query.Location,
			"units": w.query.Units,
			"appid": apiKey,
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if status != 0 && status != nethttp.StatusOK {
		var statusErr *http.StatusError
		message := ""
		switch {
		case errResp != nil:
			message = errResp.(*external.APIErrorResponse).Message
		case errors.As(err, &statusErr):
			message = statusErr.Body
		}
		log.Warn("Weather API returned a non-200 status",
			zap.Int("status", status), zap.String("message", message))
		return nil, fmt.Errorf("weather api status %d: %w", status, model.ErrUpstreamUnavailable)
	}

	if err != nil {
		if status != 0 {
			log.Warn("Weather API body could not be decoded", zap.Int("status", status), zap.Error(err))
			return nil, fmt.Errorf("decode weather response: %w: %w", model.ErrMalformedPayload, err)
		}
		log.Warn("Weather API request failed", zap.Error(err))
		return nil, fmt.Errorf("weather api request: %w: %w", model.ErrUpstreamUnavailable, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	if err := w.validate.Struct(response); err != nil {
		log.Warn("Weather API payload is incomplete", zap.Error(err))
		return nil, fmt.Errorf("validate weather response: %w: %w", model.ErrMalformedPayload, err)
	}

	return response, nil
}
