package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "PROMOSHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Storage driver names accepted by PROMOSHOP_STORAGE_DRIVER.
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PROMOSHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"PROMOSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PROMOSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PROMOSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StorageConfig struct {
	Driver     string `envconfig:"PROMOSHOP_STORAGE_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"PROMOSHOP_STORAGE_SQLITE_PATH" default:"promoshop.db"`
}

func (s StorageConfig) normalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}

// DriverName returns the configured driver in canonical form.
func (s StorageConfig) DriverName() string {
	return s.normalizedDriver()
}

func (s StorageConfig) validate() error {
	switch s.normalizedDriver() {
	case StorageDriverSQLite, StorageDriverRedis, StorageDriverMemory:
		return nil
	}
	return fmt.Errorf("unknown storage driver %q", s.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"PROMOSHOP_REDIS_URL"`
	Address      string        `envconfig:"PROMOSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"PROMOSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"PROMOSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PROMOSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PROMOSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PROMOSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PROMOSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PROMOSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PROMOSHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}
