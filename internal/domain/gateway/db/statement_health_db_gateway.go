package db

import (
	"context"
	"time"

	"weather-etl/internal/domain/model"
)

// StatementHealthDBGateway probes the store with SELECT 1 through a StatementExecutor.
type StatementHealthDBGateway struct {
	executor StatementExecutor
	timeout  time.Duration
}

var _ HealthDBGateway = (*StatementHealthDBGateway)(nil)

func NewStatementHealthDBGateway(executor StatementExecutor) *StatementHealthDBGateway {
	return &StatementHealthDBGateway{executor: executor, timeout: 5 * time.Second}
}

func (gateway *StatementHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, gateway.timeout)
	defer cancel()

	_, err := gateway.executor.ExecuteStatement(ctx, model.Statement{SQL: "SELECT 1", IncludeResultMetadata: true})
	return model.NewComponentHealth(err)
}
