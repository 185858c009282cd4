package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"weather-etl/configs"
	"weather-etl/internal/domain/gateway/api"
	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/gateway/queue"
	"weather-etl/internal/domain/gateway/secret"
	"weather-etl/internal/domain/gateway/storage"
	"weather-etl/internal/domain/usecase/weatherexport"
	"weather-etl/internal/domain/usecase/weathersync"
	infraaws "weather-etl/internal/infra/aws"
	infragorm "weather-etl/internal/infra/database/gorm"
	"weather-etl/internal/infra/database/rdsdata"
	"weather-etl/internal/infra/database/sqlc"
	"weather-etl/pkg/http"
	"weather-etl/pkg/log"
)

// Container holds the wired dependencies shared by the entry points.
type Container struct {
	Config   *configs.EnvConfig
	Clients  *infraaws.Clients
	Executor db.StatementExecutor
	DBHealth db.HealthDBGateway
	Storage  storage.ObjectStorageGateway
	sqlDB    *sql.DB
}

// New loads AWS clients and the statement executor selected by the database driver.
func New(ctx context.Context, cfg *configs.EnvConfig) (*Container, error) {
	clients, err := infraaws.NewClients(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	container := &Container{
		Config:  cfg,
		Clients: clients,
		Storage: storage.NewS3Gateway(clients.S3, cfg.Storage.Bucket),
	}

	switch cfg.Database.Driver {
	case configs.DriverPostgres:
		sqlDB, err := sqlc.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		gormDB, err := infragorm.Open(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		container.sqlDB = sqlDB
		container.Executor = sqlc.NewExecutor(sqlDB)
		container.DBHealth = db.NewGormHealthDBGateway(gormDB)
	case configs.DriverRDSData, "":
		executor := rdsdata.NewExecutor(clients.RDSData, cfg.Database)
		container.Executor = executor
		container.DBHealth = db.NewStatementHealthDBGateway(executor)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	log.Infof("Database driver %s initialized", container.driver())
	return container, nil
}

func (c *Container) driver() string {
	if c.Config.Database.Driver == "" {
		return configs.DriverRDSData
	}
	return c.Config.Database.Driver
}

// SyncUseCase wires the sync unit.
func (c *Container) SyncUseCase() weathersync.UseCase {
	cfg := c.Config.Weather
	weatherGateway := api.NewWeatherGateway(cfg.APIURL,
		api.WeatherQuery{Location: cfg.Location, Units: cfg.Units},
		http.ClientOptions{ReadTimeout: cfg.Timeout, FollowRedirect: true},
	)
	resolver := weathersync.NewSecretResolver(secret.NewSecretsManagerGateway(c.Clients.SecretsManager))

	return weathersync.NewSyncUseCase(
		weathersync.Config{APIKeySecret: cfg.APIKeySecret, City: cfg.City},
		resolver,
		weatherGateway,
		db.NewWeatherDataGateway(c.Executor),
	)
}

// ExportUseCase wires the export unit. The SQS sender is only built when a queue is set.
func (c *Container) ExportUseCase() weatherexport.UseCase {
	var sender queue.Sender
	if c.Config.Export.NotifyQueue != "" {
		sender = infraaws.NewSQSSenderAdapter(c.Clients.SQS)
	}

	return weatherexport.NewExportUseCase(
		weatherexport.Config{
			Bucket:      c.Config.Storage.Bucket,
			Prefix:      c.Config.Storage.Prefix,
			HeaderMode:  weatherexport.ParseHeaderMode(c.Config.Export.HeaderMode),
			NotifyQueue: c.Config.Export.NotifyQueue,
		},
		db.NewWeatherDataGateway(c.Executor),
		c.Storage,
		sender,
	)
}

// Close releases the Postgres pool when one was opened.
func (c *Container) Close() error {
	if c.sqlDB != nil {
		return c.sqlDB.Close()
	}
	return nil
}
