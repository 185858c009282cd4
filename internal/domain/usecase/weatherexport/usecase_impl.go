package weatherexport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/gateway/queue"
	"weather-etl/internal/domain/gateway/storage"
	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"go.uber.org/zap"
)

const (
	DefaultPrefix  = "weather-data-export"
	CSVContentType = "text/csv"
)

type Config struct {
	Bucket      string
	Prefix      string
	HeaderMode  HeaderMode
	NotifyQueue string
}

type exportUseCase struct {
	config         Config
	dataGateway    db.WeatherDataGateway
	storageGateway storage.ObjectStorageGateway
	sender         queue.Sender
	now            func() time.Time
}

// NewExportUseCase builds the export unit. sender may be nil when no notification queue is used.
func NewExportUseCase(config Config, dataGateway db.WeatherDataGateway, storageGateway storage.ObjectStorageGateway, sender queue.Sender) UseCase {
	if config.Prefix == "" {
		config.Prefix = DefaultPrefix
	}
	if config.HeaderMode == "" {
		config.HeaderMode = HeaderFirstRow
	}

	return &exportUseCase{
		config:         config,
		dataGateway:    dataGateway,
		storageGateway: storageGateway,
		sender:         sender,
		now:            time.Now,
	}
}

func (uc *exportUseCase) Export(ctx context.Context) (*model.ExportResult, error) {
	log.Info(msg.GetMessage("export.start"))

	rows, err := uc.dataGateway.FindLastDay(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNoData) {
			log.Info("No records found in the database for export")
			return nil, err
		}
		log.Error("Error reading data from database", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrReadFailed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export: %w", model.ErrNoData)
	}
	log.Info("Records read from database", zap.Int("records", len(rows)))

	if uc.config.Bucket == "" {
		log.Error("S3_BUCKET_NAME is not set")
		return nil, fmt.Errorf("%w: bucket name: %w", model.ErrUploadFailed, model.ErrConfigurationMissing)
	}

	body, header, err := MarshalCSV(rows, uc.config.HeaderMode)
	if err != nil {
		log.Error("Error serializing export", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrUploadFailed, err)
	}

	exportedAt := uc.now().UTC()
	key := BuildObjectKey(uc.config.Prefix, exportedAt)
	if err := uc.storageGateway.PutObject(ctx, uc.config.Bucket, key, CSVContentType, body); err != nil {
		log.Error("Error writing to S3", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrUploadFailed, err)
	}
	log.Info(msg.GetMessage("export.uploaded", uc.config.Bucket, key), zap.Int("records", len(rows)))

	result := &model.ExportResult{
		Bucket:     uc.config.Bucket,
		Key:        key,
		Records:    len(rows),
		Columns:    header,
		ExportedAt: exportedAt,
	}
	uc.notify(ctx, result)
	return result, nil
}

// notify publishes the export location. A failure is only logged.
func (uc *exportUseCase) notify(ctx context.Context, result *model.ExportResult) {
	if uc.sender == nil || uc.config.NotifyQueue == "" {
		return
	}

	notification := queue.ExportNotification{Bucket: result.Bucket, Key: result.Key, Records: result.Records}
	if err := uc.sender.SendMessage(ctx, uc.config.NotifyQueue, notification); err != nil {
		log.Warn(msg.GetMessage("export.notify-failed"), zap.String("queue", uc.config.NotifyQueue), zap.Error(err))
	}
}
