package handler

import (
	"context"
	"errors"
	"net/http"

	"weather-etl/internal/domain/model"
	"weather-etl/internal/domain/usecase/weatherexport"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type ExportHandler struct {
	useCase weatherexport.UseCase
}

func NewExportHandler(useCase weatherexport.UseCase) *ExportHandler {
	return &ExportHandler{useCase: useCase}
}

// Handle is the Lambda entry point for scheduled export events.
func (h *ExportHandler) Handle(ctx context.Context, _ events.CloudWatchEvent) (model.InvocationResponse, error) {
	return h.Invoke(ctx), nil
}

// Invoke runs one export pass. An empty store or a failed read is reported as 200.
func (h *ExportHandler) Invoke(ctx context.Context) (response model.InvocationResponse) {
	id := requestID(ctx)
	defer recoverInto(&response, "export", id)

	log.Info("Export execution started", zap.String("request_id", id))

	result, err := h.useCase.Export(ctx)
	switch {
	case err == nil:
		log.Info("Data successfully exported to S3", zap.String("request_id", id), zap.String("key", result.Key))
		return model.NewMessageResponse(http.StatusOK, msg.GetMessage("export.success", result.Records))
	case errors.Is(err, model.ErrNoData), errors.Is(err, model.ErrReadFailed):
		log.Warn("No data retrieved from database or error occurred during read", zap.String("request_id", id), zap.Error(err))
		return model.NewMessageResponse(http.StatusOK, msg.GetMessage("export.no-data"))
	case errors.Is(err, model.ErrUploadFailed):
		log.Error(msg.GetMessage("export.failed"), zap.String("request_id", id), zap.Error(err))
		return model.NewErrorResponse(http.StatusInternalServerError, msg.GetMessage("export.failed"))
	default:
		log.Error("Error executing export", zap.String("request_id", id), zap.Error(err))
		return model.NewErrorResponse(http.StatusInternalServerError, err.Error())
	}
}
