package configs

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"
	"weather-etl/pkg/resource"

	"github.com/joho/godotenv"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

// Database drivers
const (
	DriverRDSData  = "rds-data"
	DriverPostgres = "postgres"
)

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
	AWS             AWSConfig
	Database        DatabaseConfig
	Storage         StorageConfig
	Weather         WeatherConfig
	Export          ExportConfig
	Server          ServerConfig
	Schedule        ScheduleConfig
	Redis           RedisConfig
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type DatabaseConfig struct {
	Driver       string
	ClusterARN   string
	SecretARN    string
	Name         string
	Host         string
	Port         int
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
}

type StorageConfig struct {
	Bucket string
	Prefix string
}

type WeatherConfig struct {
	APIURL       string
	APIKeySecret string
	Location     string
	City         string
	Units        string
	Timeout      time.Duration
}

type ExportConfig struct {
	HeaderMode  string
	NotifyQueue string
}

type ServerConfig struct {
	Port        string
	ContextPath string
}

type ScheduleConfig struct {
	SyncCron   string
	ExportCron string
	LockTTL    time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// Load reads an optional .env file, then the properties file named by CONFIG_FILE (the
// embedded application.yml when unset), and initializes the message catalog and log level.
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("fail to load .env: %w", err)
	}

	properties, err := resource.Load(os.Getenv("CONFIG_FILE"), applicationYAML)
	if err != nil {
		return nil, err
	}
	if err := InitMessages(); err != nil {
		return nil, err
	}

	cfg := FromProperties(properties)
	log.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// InitMessages loads the embedded message catalog.
func InitMessages() error {
	return msg.Init(messagesYAML)
}

// FromProperties maps resolved properties into an EnvConfig.
func FromProperties(p *resource.Properties) *EnvConfig {
	return &EnvConfig{
		ApplicationName: p.GetString("app.name"),
		LogLevel:        p.GetString("app.log-level"),
		AWS: AWSConfig{
			Region:          p.GetString("app.cloud.aws-region"),
			Endpoint:        p.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     p.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: p.GetString("app.cloud.aws-secret-access-key"),
		},
		Database: DatabaseConfig{
			Driver:       p.GetString("app.database.driver"),
			ClusterARN:   p.GetString("app.database.cluster-arn"),
			SecretARN:    p.GetString("app.database.secret-arn"),
			Name:         p.GetString("app.database.name"),
			Host:         p.GetString("app.database.host"),
			Port:         p.GetInt("app.database.port"),
			User:         p.GetString("app.database.user"),
			Password:     p.GetString("app.database.password"),
			SSLMode:      p.GetString("app.database.ssl-mode"),
			MaxOpenConns: p.GetInt("app.database.max-open-conns"),
		},
		Storage: StorageConfig{
			Bucket: p.GetString("app.storage.bucket"),
			Prefix: p.GetString("app.storage.prefix"),
		},
		Weather: WeatherConfig{
			APIURL:       p.GetString("app.weather.api-url"),
			APIKeySecret: p.GetString("app.weather.api-key-secret"),
			Location:     p.GetString("app.weather.location"),
			City:         p.GetString("app.weather.city"),
			Units:        p.GetString("app.weather.units"),
			Timeout:      p.GetDuration("app.weather.timeout"),
		},
		Export: ExportConfig{
			HeaderMode:  p.GetString("app.export.header-mode"),
			NotifyQueue: p.GetString("app.export.notify-queue"),
		},
		Server: ServerConfig{
			Port:        p.GetString("app.server.port"),
			ContextPath: p.GetString("app.server.context-path"),
		},
		Schedule: ScheduleConfig{
			SyncCron:   p.GetString("app.schedule.sync-cron"),
			ExportCron: p.GetString("app.schedule.export-cron"),
			LockTTL:    p.GetDuration("app.schedule.lock-ttl"),
		},
		Redis: RedisConfig{
			Address:  p.GetString("app.redis.address"),
			Password: p.GetString("app.redis.password"),
			DB:       p.GetInt("app.redis.db"),
		},
	}
}
