package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration except the listening port,
// which is resolved once by the bootstrap and handed to the server
type Config struct {
	ClickHouse ClickHouseConfig
	Redis      RedisConfig
	Activity   ActivityConfig
	API        APIConfig
}

// ClickHouseConfig holds ClickHouse connection settings
type ClickHouseConfig struct {
	Host                   string
	Port                   string
	Database               string
	User                   string
	Password               string
	DSN                    string
	AsyncInsertEnabled     bool  // whether to use async inserts
	AsyncInsertWait        int   // wait_for_async_insert (0 or 1)
	AsyncInsertMaxDataSize int64 // async_insert_max_data_size in bytes
	AsyncInsertBusyTimeout int   // async_insert_busy_timeout_ms in milliseconds
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	Endpoint string
	DB       int
}

// ActivityConfig tunes the user activity pipeline
type ActivityConfig struct {
	BufferCapacity       int   // capacity of the activity buffer channel
	BatchSize            int   // number of events to batch before flushing
	FlushIntervalSeconds int   // time interval in seconds to flush batches
	DedupTTLMS           int64 // how long a flushed event key is remembered in Redis
}

// APIConfig holds HTTP server settings
type APIConfig struct {
	IdleTimeoutSeconds int
	RequestLogging     bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		ClickHouse: ClickHouseConfig{
			Host:                   getEnv("CLICKHOUSE_HOST", "127.0.0.1"),
			Port:                   getEnv("CLICKHOUSE_PORT", "9000"),
			Database:               getEnv("CLICKHOUSE_DATABASE", "default"),
			User:                   getEnv("CLICKHOUSE_USER", "app"),
			Password:               getEnv("CLICKHOUSE_PASSWORD", ""),
			DSN:                    getEnv("CLICKHOUSE_DSN", ""),
			AsyncInsertEnabled:     getEnv("CLICKHOUSE_ASYNC_INSERT_ENABLED", "1") == "1",
			AsyncInsertWait:        getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_WAIT", 1),
			AsyncInsertMaxDataSize: getEnvAsInt64("CLICKHOUSE_ASYNC_INSERT_MAX_DATA_SIZE", 10485760),
			AsyncInsertBusyTimeout: getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_BUSY_TIMEOUT", 200),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			Endpoint: getEnv("REDIS_ENDPOINT", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Activity: ActivityConfig{
			BufferCapacity:       getEnvAsInt("ACTIVITY_BUFFER_CAPACITY", 10000),
			BatchSize:            getEnvAsInt("ACTIVITY_BATCH_SIZE", 1000),
			FlushIntervalSeconds: getEnvAsInt("ACTIVITY_FLUSH_INTERVAL_SECONDS", 1),
			DedupTTLMS:           getEnvAsInt64("ACTIVITY_DEDUP_TTL_MS", 60*60*1000),
		},
		API: APIConfig{
			IdleTimeoutSeconds: getEnvAsInt("API_IDLE_TIMEOUT_SECONDS", 5),
			RequestLogging:     getEnv("API_REQUEST_LOGGING", "1") == "1",
		},
	}
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database

	if !c.AsyncInsertEnabled {
		return dsn
	}

	// applied to every query on the connection
	params := []string{
		"async_insert=1",
		fmt.Sprintf("wait_for_async_insert=%d", c.AsyncInsertWait),
		fmt.Sprintf("async_insert_max_data_size=%d", c.AsyncInsertMaxDataSize),
		fmt.Sprintf("async_insert_busy_timeout_ms=%d", c.AsyncInsertBusyTimeout),
	}
	return dsn + "?" + strings.Join(params, "&")
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}

func (a *ActivityConfig) FlushInterval() time.Duration {
	if a.FlushIntervalSeconds <= 0 {
		return time.Second
	}
	return time.Duration(a.FlushIntervalSeconds) * time.Second
}

func (a *ActivityConfig) DedupTTL() time.Duration {
	if a.DedupTTLMS <= 0 {
		return 0
	}
	return time.Duration(a.DedupTTLMS) * time.Millisecond
}

func (a *APIConfig) IdleTimeout() time.Duration {
	return time.Duration(a.IdleTimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
