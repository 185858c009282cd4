package weathersync

import (
	"fmt"
	"time"

	"weather-etl/internal/domain/entity"
	"weather-etl/internal/domain/model"
	"weather-etl/internal/domain/model/external"
)

// ToObservation maps a validated API payload to the row written for city at time at.
func ToObservation(city string, response *external.CurrentWeatherResponse, at time.Time) (*entity.WeatherObservation, error) {
	if response == nil || response.Main == nil || response.Wind == nil || len(response.Weather) == 0 ||
		response.Main.Temp == nil || response.Main.Humidity == nil || response.Main.Pressure == nil ||
		response.Wind.Speed == nil {
		return nil, fmt.Errorf("map weather response: %w", model.ErrMalformedPayload)
	}

	return &entity.WeatherObservation{
		City:        city,
		Temperature: *response.Main.Temp,
		Humidity:    *response.Main.Humidity,
		Pressure:    *response.Main.Pressure,
		WindSpeed:   *response.Wind.Speed,
		Description: response.Weather[0].Description,
		Timestamp:   at,
	}, nil
}
