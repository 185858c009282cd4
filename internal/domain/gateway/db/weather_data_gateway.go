package db

import (
	"context"

	"weather-etl/internal/domain/entity"
)

type WeatherDataGateway interface {
	// InsertObservation inserts one row, ignoring a conflict on (city, timestamp).
	// Returns the number of records updated.
	InsertObservation(ctx context.Context, observation *entity.WeatherObservation) (int64, error)

	// FindLastDay returns every row of the trailing 24 hours, newest first.
	// Returns model.ErrNoData when the query yields no records or no column metadata.
	FindLastDay(ctx context.Context) ([]entity.RelationalRow, error)
}
