package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/friendsofgo/errors"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	JWT         JWTConfig
	Dashboard   DashboardConfig
	Refresh     RefreshConfig
	WebSocket   WebSocketConfig
	Redis       RedisConfig
	Discord     DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// JWTConfig is the configuration for JWT verification.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// DashboardConfig bounds the per-session state stores.
type DashboardConfig struct {
	MaxAlerts            int           `env:"DASHBOARD_MAX_ALERTS" envDefault:"50"`
	MaxNotes             int           `env:"DASHBOARD_MAX_NOTES" envDefault:"100"`
	MaxNoteLength        int           `env:"DASHBOARD_MAX_NOTE_LENGTH" envDefault:"1000"`
	ExclusiveModals      bool          `env:"DASHBOARD_EXCLUSIVE_MODALS" envDefault:"true"`
	MaxSessions          int           `env:"DASHBOARD_MAX_SESSIONS" envDefault:"10000"`
	SessionIdleTimeout   time.Duration `env:"DASHBOARD_SESSION_IDLE_TIMEOUT" envDefault:"24h"`
	SessionEvictInterval time.Duration `env:"DASHBOARD_SESSION_EVICT_INTERVAL" envDefault:"10m"`
}

// RefreshConfig drives the simulated background data refresh.
type RefreshConfig struct {
	Enabled  bool          `env:"REFRESH_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
}

// WebSocketConfig is the configuration for WebSocket connections.
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"512"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
}

// RedisConfig is the configuration for the optional event bridge.
// Leave Host empty to run single-instance without Redis.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DiscordConfig is the configuration for Discord webhook error reports.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse environment")
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return errors.New("config: JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return errors.New("config: JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Dashboard.MaxAlerts < 1 {
		return errors.New("config: DASHBOARD_MAX_ALERTS must be positive")
	}
	if cfg.Dashboard.MaxNotes < 1 {
		return errors.New("config: DASHBOARD_MAX_NOTES must be positive")
	}
	if cfg.Dashboard.MaxNoteLength < 1 {
		return errors.New("config: DASHBOARD_MAX_NOTE_LENGTH must be positive")
	}
	if cfg.Dashboard.SessionEvictInterval < time.Second {
		return errors.New("config: DASHBOARD_SESSION_EVICT_INTERVAL must be at least 1s")
	}
	if cfg.Refresh.Enabled && cfg.Refresh.Interval < time.Second {
		return errors.New("config: REFRESH_INTERVAL must be at least 1s")
	}
	return nil
}
