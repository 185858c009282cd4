package main

import (
	"context"

	"weather-etl/configs"
	"weather-etl/internal/application/handler"
	"weather-etl/internal/bootstrap"
	"weather-etl/pkg/log"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize export unit: %v", err)
	}
	defer func() { _ = container.Close() }()

	lambda.Start(handler.NewExportHandler(container.ExportUseCase()).Handle)
}
