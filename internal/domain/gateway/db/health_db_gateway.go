package db

import (
	"context"

	"weather-etl/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
