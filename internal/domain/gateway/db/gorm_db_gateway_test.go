package db

import (
	"context"
	"database/sql"
	"testing"

	"weather-etl/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func TestGormHealthDBGateway(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	status := NewGormHealthDBGateway(gormDB).Health(context.Background())
	assert.Equal(t, model.StatusUp, status.Status)
	assert.Equal(t, "1", status.Details["open_connections"])

	require.NoError(t, sqlDB.Close())
	status = NewGormHealthDBGateway(gormDB).Health(context.Background())
	assert.Equal(t, model.StatusDown, status.Status)
}
