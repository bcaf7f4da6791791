// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root of config.yml.
type Config struct {
	// Environment selects the logger flavour: development or production.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's minimum log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP         HTTP         `yaml:"http"`
	JWT          JWT          `yaml:"jwt"`
	Database     Database     `yaml:"database"`
	UserMetadata UserMetadata `yaml:"userMetadata"`

	// GracefulShutdownTimeout bounds how long in-flight requests may take to finish on shutdown.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// HTTP configures the API server.
type HTTP struct {
	Addr              string        `env:"HTTP_ADDR"                env-default:":8080" yaml:"addr"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"    yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"   yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"    yaml:"writeTimeout"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"    yaml:"idleTimeout"`
	// RequestTimeout caps the handling of a single request. Zero disables it.
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
	// MaxHeaderBytes of zero uses the net/http default.
	MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
	// MetricsPath serves Prometheus metrics. Empty disables the endpoint.
	MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	// PprofEnabled mounts the pprof handlers under /debug/pprof/.
	PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	// AuthEnabled requires an RS256 bearer token signed by JWT.PrivateKey on the user-metadata routes.
	AuthEnabled bool `env:"HTTP_AUTH_ENABLED" env-default:"false" yaml:"authEnabled"`
	// CORSAllowedOrigins lists browser origins allowed to call the API. Empty allows any.
	CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"corsAllowedOrigins"`
}

// JWT holds the PEM encoded RSA key pair for bearer tokens. The private key
// is only needed by the jwt command.
type JWT struct {
	PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
}

// Database configures the PostgreSQL pool.
type Database struct {
	Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"     yaml:"username"`
	Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword" yaml:"password"`
	Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
	Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
	SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
	DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"usermeta"   yaml:"name"`
	MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"         yaml:"maxOpenConnections"`
	MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"          yaml:"maxIdleConnections"`
	ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"30m"        yaml:"connMaxLifetime"`
	ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"5m"         yaml:"connMaxIdleTime"`
}

// UserMetadata configures the user-metadata endpoint.
type UserMetadata struct {
	// MaxListLimit is the largest limit a list filter may carry. Zero disables the check.
	MaxListLimit uint `env:"USER_METADATA_MAX_LIST_LIMIT" env-default:"1000" yaml:"maxListLimit"`
}

// Load reads configPath and applies environment overrides and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
