package weathersync

import (
	"context"
	"fmt"
	"time"

	"weather-etl/internal/domain/gateway/api"
	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"go.uber.org/zap"
)

type Config struct {
	APIKeySecret string
	City         string
}

type syncUseCase struct {
	config         Config
	resolver       *SecretResolver
	weatherGateway api.WeatherGateway
	dataGateway    db.WeatherDataGateway
	now            func() time.Time
}

func NewSyncUseCase(config Config, resolver *SecretResolver, weatherGateway api.WeatherGateway, dataGateway db.WeatherDataGateway) UseCase {
	return &syncUseCase{
		config:         config,
		resolver:       resolver,
		weatherGateway: weatherGateway,
		dataGateway:    dataGateway,
		now:            time.Now,
	}
}

func (uc *syncUseCase) Sync(ctx context.Context) (*Result, error) {
	log.Info(msg.GetMessage("sync.start", uc.config.City))

	apiKey := uc.resolver.ResolveAPIKey(ctx, uc.config.APIKeySecret)

	response, err := uc.weatherGateway.GetCurrentWeather(ctx, apiKey)
	if err != nil {
		log.Error(msg.GetMessage("sync.fetch-failed"), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}

	observation, err := ToObservation(uc.config.City, response, uc.now())
	if err != nil {
		log.Error(msg.GetMessage("sync.fetch-failed"), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}
	log.Info("External data retrieved",
		zap.Float64("temperature", observation.Temperature),
		zap.String("description", observation.Description))

	updated, err := uc.dataGateway.InsertObservation(ctx, observation)
	if err != nil {
		log.Error(msg.GetMessage("sync.store-failed"), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrStoreFailed, err)
	}
	log.Info(msg.GetMessage("sync.rows-updated", updated))

	return &Result{Observation: observation, RecordsUpdated: updated}, nil
}
