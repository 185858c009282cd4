package external

// CurrentWeatherResponse is the subset of the OpenWeather current weather payload the sync
// unit consumes. Pointers distinguish a missing group from a zero reading.
type CurrentWeatherResponse struct {
	Name    string                 `json:"name"`
	Dt      int64                  `json:"dt"`
	Main    *MainReadingDTO        `json:"main" validate:"required"`
	Wind    *WindReadingDTO        `json:"wind" validate:"required"`
	Weather []WeatherDescriptorDTO `json:"weather" validate:"required,min=1,dive"`
}

// MainReadingDTO carries temperature (°C with units=metric), humidity (%) and pressure (hPa).
type MainReadingDTO struct {
	Temp     *float64 `json:"temp" validate:"required"`
	Humidity *int64   `json:"humidity" validate:"required"`
	Pressure *int64   `json:"pressure" validate:"required"`
}

// WindReadingDTO carries wind speed in m/s.
type WindReadingDTO struct {
	Speed *float64 `json:"speed" validate:"required"`
}

type WeatherDescriptorDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// APIErrorResponse represents error responses from the OpenWeather API
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
