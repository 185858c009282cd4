package entity

import "time"

// WeatherObservation is one reading for the configured location, persisted as one
// weather_data row. City and Timestamp form the natural key.
type WeatherObservation struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Humidity    int64     `json:"humidity"`
	Pressure    int64     `json:"pressure"`
	WindSpeed   float64   `json:"windSpeed"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
