package db

import (
	"context"

	"weather-etl/internal/domain/model"
)

// StatementExecutor runs parameterized SQL against the relational store and returns typed
// records plus column metadata.
type StatementExecutor interface {
	ExecuteStatement(ctx context.Context, statement model.Statement) (*model.StatementResult, error)
}
