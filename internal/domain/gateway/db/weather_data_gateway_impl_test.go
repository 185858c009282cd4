package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-etl/internal/domain/entity"
	"weather-etl/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	statements []model.Statement
	result     *model.StatementResult
	err        error
}

func (f *fakeExecutor) ExecuteStatement(_ context.Context, statement model.Statement) (*model.StatementResult, error) {
	f.statements = append(f.statements, statement)
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &model.StatementResult{}, nil
	}
	return f.result, nil
}

func columns(labels ...string) []model.ColumnMetadata {
	out := make([]model.ColumnMetadata, len(labels))
	for i, label := range labels {
		out[i] = model.ColumnMetadata{Label: label}
	}
	return out
}

func TestNewInsertStatement_TagsParameterKinds(t *testing.T) {
	observation := &entity.WeatherObservation{
		City:        "Rome",
		Temperature: 21.5,
		Humidity:    60,
		Pressure:    1012,
		WindSpeed:   3.2,
		Description: "clear sky",
		Timestamp:   time.Date(2026, 10, 18, 9, 30, 15, 250_000_000, time.UTC),
	}

	statement := NewInsertStatement(observation)
	require.Len(t, statement.Parameters, 7)
	assert.Contains(t, statement.SQL, "ON CONFLICT (city, timestamp) DO NOTHING")
	assert.False(t, statement.IncludeResultMetadata)

	byName := make(map[string]model.SqlParameter)
	for _, p := range statement.Parameters {
		byName[p.Name] = p
	}

	require.NotNil(t, byName["city"].Value.StringValue)
	assert.Equal(t, "Rome", *byName["city"].Value.StringValue)
	require.NotNil(t, byName["temp"].Value.DoubleValue)
	assert.Equal(t, 21.5, *byName["temp"].Value.DoubleValue)
	require.NotNil(t, byName["humidity"].Value.LongValue)
	assert.Equal(t, int64(60), *byName["humidity"].Value.LongValue)
	require.NotNil(t, byName["pressure"].Value.LongValue)
	assert.Equal(t, int64(1012), *byName["pressure"].Value.LongValue)
	require.NotNil(t, byName["wind"].Value.DoubleValue)
	assert.Equal(t, 3.2, *byName["wind"].Value.DoubleValue)
	require.NotNil(t, byName["desc"].Value.StringValue)
	assert.Equal(t, "clear sky", *byName["desc"].Value.StringValue)
	require.NotNil(t, byName["ts"].Value.StringValue)
	assert.Equal(t, "2026-10-18 09:30:15.250", *byName["ts"].Value.StringValue)
	assert.Equal(t, model.TypeHintTimestamp, byName["ts"].TypeHint)
}

func TestInsertObservation_NilIsNotWritten(t *testing.T) {
	executor := &fakeExecutor{}
	gateway := NewWeatherDataGateway(executor)

	_, err := gateway.InsertObservation(context.Background(), nil)

	assert.ErrorIs(t, err, model.ErrNoData)
	assert.Empty(t, executor.statements)
}

func TestInsertObservation_ReturnsUpdatedCount(t *testing.T) {
	executor := &fakeExecutor{result: &model.StatementResult{NumberOfRecordsUpdated: 1}}
	gateway := NewWeatherDataGateway(executor)

	updated, err := gateway.InsertObservation(context.Background(), &entity.WeatherObservation{City: "Rome"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Len(t, executor.statements, 1)
}

func TestInsertObservation_PropagatesExecutorFailure(t *testing.T) {
	executor := &fakeExecutor{err: model.ErrConfigurationMissing}
	gateway := NewWeatherDataGateway(executor)

	_, err := gateway.InsertObservation(context.Background(), &entity.WeatherObservation{City: "Rome"})

	assert.ErrorIs(t, err, model.ErrConfigurationMissing)
}

func TestFindLastDay_DecodesRows(t *testing.T) {
	executor := &fakeExecutor{result: &model.StatementResult{
		ColumnMetadata: columns("city", "temperature", "humidity", "description", "active", "timestamp"),
		Records: [][]model.Field{
			{
				model.StringField("Rome"),
				model.DoubleField(21.5),
				model.LongField(60),
				model.NullField(),
				model.BooleanField(true),
				model.StringField("2026-10-18 09:00:00"),
			},
			{
				model.StringField("Rome"),
				model.DoubleField(20),
				{},
				model.StringField("few clouds"),
				model.BooleanField(false),
				model.StringField("2026-10-18 08:00:00"),
			},
		},
	}}
	gateway := NewWeatherDataGateway(executor)

	rows, err := gateway.FindLastDay(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Len(t, executor.statements, 1)
	assert.True(t, executor.statements[0].IncludeResultMetadata)
	assert.Contains(t, executor.statements[0].SQL, "ORDER BY timestamp DESC")
	assert.Empty(t, executor.statements[0].Parameters)

	first := rows[0]
	assert.Equal(t, []string{"city", "temperature", "humidity", "description", "active", "timestamp"}, first.Columns())
	temperature, _ := first.Get("temperature")
	assert.IsType(t, float64(0), temperature)
	assert.Equal(t, 21.5, temperature)
	description, ok := first.Get("description")
	assert.True(t, ok)
	assert.Nil(t, description)

	second := rows[1]
	_, ok = second.Get("humidity")
	assert.False(t, ok)
	assert.Equal(t, []string{"city", "temperature", "description", "active", "timestamp"}, second.Columns())
}

func TestFindLastDay_NoData(t *testing.T) {
	tests := []struct {
		name   string
		result *model.StatementResult
	}{
		{name: "no records", result: &model.StatementResult{ColumnMetadata: columns("city")}},
		{name: "no metadata", result: &model.StatementResult{Records: [][]model.Field{{model.StringField("Rome")}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := NewWeatherDataGateway(&fakeExecutor{result: tt.result})

			rows, err := gateway.FindLastDay(context.Background())

			assert.Nil(t, rows)
			assert.ErrorIs(t, err, model.ErrNoData)
		})
	}
}

func TestFindLastDay_RecordWiderThanMetadata(t *testing.T) {
	gateway := NewWeatherDataGateway(&fakeExecutor{result: &model.StatementResult{
		ColumnMetadata: columns("city"),
		Records:        [][]model.Field{{model.StringField("Rome"), model.LongField(1)}},
	}})

	_, err := gateway.FindLastDay(context.Background())

	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}

func TestFindLastDay_ExecutorFailure(t *testing.T) {
	gateway := NewWeatherDataGateway(&fakeExecutor{err: errors.New("connection refused")})

	_, err := gateway.FindLastDay(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNoData)
}

func TestStatementHealthDBGateway(t *testing.T) {
	up := NewStatementHealthDBGateway(&fakeExecutor{})
	assert.Equal(t, model.StatusUp, up.Health(context.Background()).Status)

	down := NewStatementHealthDBGateway(&fakeExecutor{err: errors.New("timeout")})
	status := down.Health(context.Background())
	assert.Equal(t, model.StatusDown, status.Status)
	assert.Equal(t, "timeout", status.Details["message"])
}
