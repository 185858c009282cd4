package db

import (
	"context"
	"fmt"
	"time"

	"weather-etl/internal/domain/entity"
	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"

	"go.uber.org/zap"
)

// TimestampLayout is the TIMESTAMP literal layout accepted by the statement service.
const TimestampLayout = "2006-01-02 15:04:05.000"

const insertWeatherDataSQL = `
INSERT INTO weather_data (
    city, temperature, humidity, pressure, wind_speed,
    description, timestamp
) VALUES (:city, :temp, :humidity, :pressure, :wind, :desc, :ts)
ON CONFLICT (city, timestamp) DO NOTHING`

const selectLastDaySQL = `
SELECT city, temperature, humidity, pressure, wind_speed, description, timestamp
FROM weather_data
WHERE timestamp >= NOW() - INTERVAL '1 day'
ORDER BY timestamp DESC`

type weatherDataGatewayImpl struct {
	executor StatementExecutor
}

func NewWeatherDataGateway(executor StatementExecutor) WeatherDataGateway {
	return &weatherDataGatewayImpl{executor: executor}
}

func (g *weatherDataGatewayImpl) InsertObservation(ctx context.Context, observation *entity.WeatherObservation) (int64, error) {
	if observation == nil {
		return 0, fmt.Errorf("insert weather data: %w", model.ErrNoData)
	}

	statement := NewInsertStatement(observation)
	log.Debug("Executing insert on weather_data", zap.String("sql", statement.SQL))

	result, err := g.executor.ExecuteStatement(ctx, statement)
	if err != nil {
		return 0, fmt.Errorf("insert weather data: %w", err)
	}
	return result.NumberOfRecordsUpdated, nil
}

func (g *weatherDataGatewayImpl) FindLastDay(ctx context.Context) ([]entity.RelationalRow, error) {
	statement := model.Statement{SQL: selectLastDaySQL, IncludeResultMetadata: true}
	log.Debug("Executing select on weather_data", zap.String("sql", statement.SQL))

	result, err := g.executor.ExecuteStatement(ctx, statement)
	if err != nil {
		return nil, fmt.Errorf("select weather data: %w", err)
	}
	return DecodeRows(result)
}

// NewInsertStatement maps an observation to the weather_data insert. Each parameter is
// tagged with the scalar kind of its column: doubles for temperature and wind speed,
// longs for humidity and pressure.
func NewInsertStatement(observation *entity.WeatherObservation) model.Statement {
	return model.Statement{
		SQL: insertWeatherDataSQL,
		Parameters: []model.SqlParameter{
			{Name: "city", Value: model.StringField(observation.City)},
			{Name: "temp", Value: model.DoubleField(observation.Temperature)},
			{Name: "humidity", Value: model.LongField(observation.Humidity)},
			{Name: "pressure", Value: model.LongField(observation.Pressure)},
			{Name: "wind", Value: model.DoubleField(observation.WindSpeed)},
			{Name: "desc", Value: model.StringField(observation.Description)},
			{Name: "ts", Value: model.StringField(FormatTimestamp(observation.Timestamp)), TypeHint: model.TypeHintTimestamp},
		},
	}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DecodeRows converts records into rows keyed by column label. A cell with no populated
// variant is left out of its row; an explicit null is kept as nil.
func DecodeRows(result *model.StatementResult) ([]entity.RelationalRow, error) {
	if result == nil || len(result.Records) == 0 || len(result.ColumnMetadata) == 0 {
		return nil, model.ErrNoData
	}

	rows := make([]entity.RelationalRow, 0, len(result.Records))
	for i, record := range result.Records {
		if len(record) > len(result.ColumnMetadata) {
			return nil, fmt.Errorf("record %d has %d cells for %d columns: %w",
				i, len(record), len(result.ColumnMetadata), model.ErrMalformedPayload)
		}

		row := entity.NewRelationalRow()
		for j, field := range record {
			value, ok := field.Value()
			if !ok {
				continue
			}
			row.Set(result.ColumnMetadata[j].Label, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
