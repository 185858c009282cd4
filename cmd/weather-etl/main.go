package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"weather-etl/configs"
	"weather-etl/docs"
	"weather-etl/internal/application/controller"
	"weather-etl/internal/application/handler"
	"weather-etl/internal/application/middleware"
	"weather-etl/internal/application/schedule"
	"weather-etl/internal/bootstrap"
	"weather-etl/internal/domain/usecase/health"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"
	"weather-etl/pkg/redis"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	container, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer func() { _ = container.Close() }()

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient, err = redis.NewClient(redis.NewRedisConfig(cfg.Redis.Address).
			WithPassword(cfg.Redis.Password).
			WithDatabase(cfg.Redis.DB))
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer func() { _ = redisClient.Close() }()
	}

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(cfg.Server.ContextPath)

	// Init UseCase and handlers
	syncHandler := handler.NewSyncHandler(container.SyncUseCase())
	exportHandler := handler.NewExportHandler(container.ExportUseCase())
	healthUseCase := health.NewHealthUseCase(container.DBHealth, container.Storage)

	// Init Routes
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewEtlController(api, syncHandler, exportHandler).InitEtlRoutes()
	docs.SwaggerInfo.BasePath = cfg.Server.ContextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	scheduler := schedule.NewEtlScheduler(redisClient, cfg.Schedule.LockTTL,
		schedule.Task{Name: "sync", Cron: cfg.Schedule.SyncCron, Run: func(ctx context.Context) { syncHandler.Invoke(ctx) }},
		schedule.Task{Name: "export", Cron: cfg.Schedule.ExportCron, Run: func(ctx context.Context) { exportHandler.Invoke(ctx) }},
	)
	if err := scheduler.InitScheduleTasks(ctx); err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("HTTP server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown: %v", err)
	}
}
