package db

import (
	"context"
	"strconv"

	"weather-etl/internal/domain/model"

	"gorm.io/gorm"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.NewComponentHealth(err)
	}

	var reachable int
	if err := gateway.DB.WithContext(ctx).Raw("SELECT 1").Scan(&reachable).Error; err != nil {
		return model.NewComponentHealth(err)
	}

	status := model.NewComponentHealth(nil)
	status.Details["open_connections"] = strconv.Itoa(sqlDB.Stats().OpenConnections)
	return status
}
