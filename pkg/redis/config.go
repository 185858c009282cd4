package redis

import (
	"fmt"
	"time"
)

// Config represents Redis configuration options
type Config struct {
	// Address is the Redis server host:port
	Address string
	// Password is the Redis server password
	Password string
	// Database is the Redis database number
	Database int
	// MaxRetries is the maximum number of retries for failed commands
	MaxRetries int
	// DialTimeout is the timeout for establishing connections
	DialTimeout time.Duration
	// ReadTimeout is the timeout for socket reads
	ReadTimeout time.Duration
	// WriteTimeout is the timeout for socket writes
	WriteTimeout time.Duration
}

// NewRedisConfig creates a new Redis configuration with default values
func NewRedisConfig(address string) *Config {
	return &Config{
		Address:      address,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// WithPassword sets the Redis server password
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number
func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid database: %d, must be non-negative", c.Database)
	}
	return nil
}
