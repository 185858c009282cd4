package weathersync

import (
	"context"

	"weather-etl/internal/domain/entity"
)

// Result describes a completed sync run.
type Result struct {
	Observation    *entity.WeatherObservation
	RecordsUpdated int64
}

type UseCase interface {
	// Sync fetches the current conditions and writes one observation. Failures wrap
	// model.ErrFetchFailed or model.ErrStoreFailed.
	Sync(ctx context.Context) (*Result, error)
}
