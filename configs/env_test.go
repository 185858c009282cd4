package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-etl/pkg/msg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"CONFIG_FILE", "DB_NAME", "WEATHER_LOCATION", "WEATHER_API_URL", "EXPORT_HEADER_MODE", "DB_DRIVER", "S3_BUCKET_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jirametrics", cfg.Database.Name)
	assert.Equal(t, DriverRDSData, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.Weather.APIURL)
	assert.Equal(t, "Rome,IT", cfg.Weather.Location)
	assert.Equal(t, "Rome", cfg.Weather.City)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Zero(t, cfg.Weather.Timeout)
	assert.Equal(t, "weather-data-export", cfg.Storage.Prefix)
	assert.Empty(t, cfg.Storage.Bucket)
	assert.Equal(t, "first-row", cfg.Export.HeaderMode)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.LockTTL)
	assert.Equal(t, "Data synced successfully to database", msg.GetMessage("sync.success"))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_CLUSTER_ARN", "arn:aws:rds:us-east-1:123:cluster:weather")
	t.Setenv("DB_SECRET_ARN", "arn:aws:secretsmanager:us-east-1:123:secret:db")
	t.Setenv("S3_BUCKET_NAME", "weather-exports")
	t.Setenv("WEATHER_LOCATION", "Milan,IT")
	t.Setenv("EXPORT_HEADER_MODE", "union")
	t.Setenv("WEATHER_API_TIMEOUT", "15s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:rds:us-east-1:123:cluster:weather", cfg.Database.ClusterARN)
	assert.Equal(t, "arn:aws:secretsmanager:us-east-1:123:secret:db", cfg.Database.SecretARN)
	assert.Equal(t, "weather-exports", cfg.Storage.Bucket)
	assert.Equal(t, "Milan,IT", cfg.Weather.Location)
	assert.Equal(t, "union", cfg.Export.HeaderMode)
	assert.Equal(t, 15*time.Second, cfg.Weather.Timeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEATHER_CITY_DOTENV_TEST=Naples\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("WEATHER_CITY_DOTENV_TEST") })

	_, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Naples", os.Getenv("WEATHER_CITY_DOTENV_TEST"))
}
