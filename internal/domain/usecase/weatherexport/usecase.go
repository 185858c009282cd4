package weatherexport

import (
	"context"

	"weather-etl/internal/domain/model"
)

type UseCase interface {
	// Export writes the last day of observations as a CSV object. An empty store wraps
	// model.ErrNoData; other failures wrap model.ErrReadFailed or model.ErrUploadFailed.
	Export(ctx context.Context) (*model.ExportResult, error)
}
