package handler

import (
	"context"
	"errors"
	"net/http"

	"weather-etl/internal/domain/model"
	"weather-etl/internal/domain/usecase/weathersync"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type SyncHandler struct {
	useCase weathersync.UseCase
}

func NewSyncHandler(useCase weathersync.UseCase) *SyncHandler {
	return &SyncHandler{useCase: useCase}
}

// Handle is the Lambda entry point for scheduled sync events.
func (h *SyncHandler) Handle(ctx context.Context, _ events.CloudWatchEvent) (model.InvocationResponse, error) {
	return h.Invoke(ctx), nil
}

// Invoke runs one sync pass and shapes the result.
func (h *SyncHandler) Invoke(ctx context.Context) (response model.InvocationResponse) {
	id := requestID(ctx)
	defer recoverInto(&response, "sync", id)

	log.Info("Sync execution started", zap.String("request_id", id))

	_, err := h.useCase.Sync(ctx)
	switch {
	case err == nil:
		log.Info(msg.GetMessage("sync.success"), zap.String("request_id", id))
		return model.NewMessageResponse(http.StatusOK, msg.GetMessage("sync.success"))
	case errors.Is(err, model.ErrFetchFailed):
		return model.NewErrorResponse(http.StatusInternalServerError, msg.GetMessage("sync.fetch-failed"))
	case errors.Is(err, model.ErrStoreFailed):
		return model.NewErrorResponse(http.StatusInternalServerError, msg.GetMessage("sync.store-failed"))
	default:
		log.Error("Error executing sync", zap.String("request_id", id), zap.Error(err))
		return model.NewErrorResponse(http.StatusInternalServerError, err.Error())
	}
}
