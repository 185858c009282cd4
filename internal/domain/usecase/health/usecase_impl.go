package health

import (
	"context"

	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/gateway/storage"
	"weather-etl/internal/domain/model"
)

type healthUseCase struct {
	dbGateway      db.HealthDBGateway
	storageGateway storage.ObjectStorageGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, storageGateway storage.ObjectStorageGateway) UseCase {
	return &healthUseCase{
		dbGateway:      dbGateway,
		storageGateway: storageGateway,
	}
}

// CheckHealth reports DOWN when the database is down. An unconfigured bucket (UNKNOWN) does
// not fail the check since the sync unit never touches storage.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	storageHealth := useCase.storageGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || storageHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Storage:  storageHealth,
	}
}
