package health

import (
	"context"

	"weather-etl/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
