package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel     LogLeveler   `mapstructure:"LOG_LEVEL"`
	HTTP         HTTP         `mapstructure:",squash"`
	Amadeus      Amadeus      `mapstructure:",squash"`
	TransportAPI TransportAPI `mapstructure:",squash"`
	Search       Search       `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Amadeus holds the self-service API credentials. Blank credentials are
// reported per request, not at startup.
type Amadeus struct {
	BaseURL      string        `mapstructure:"AMADEUS_BASE_URL"`
	ClientID     string        `mapstructure:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `mapstructure:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	CurrencyCode string        `mapstructure:"AMADEUS_CURRENCY_CODE"`
	MaxResults   int           `mapstructure:"AMADEUS_MAX_RESULTS"`
}

type TransportAPI struct {
	BaseURL string        `mapstructure:"TRANSPORT_API_BASE_URL"`
	AppID   string        `mapstructure:"TRANSPORT_API_APP_ID"`
	AppKey  string        `mapstructure:"TRANSPORT_API_APP_KEY"`
	Timeout time.Duration `mapstructure:"TRANSPORT_API_TIMEOUT"`
}

type Search struct {
	SequenceStore       string        `mapstructure:"SEQUENCE_STORE"`
	SequenceTTL         time.Duration `mapstructure:"SEQUENCE_TTL"`
	CityCoordinatesFile string        `mapstructure:"CITY_COORDINATES_FILE"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

const (
	SequenceStoreMemory = "memory"
	SequenceStoreRedis  = "redis"
)

// LogValue keeps credentials out of the debug config dump.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("log_level", string(c.LogLevel)),
		slog.Int("http_port", c.HTTP.Port),
		slog.Duration("http_timeout", c.HTTP.Timeout),
		slog.Any("cors_allowed_origins", c.HTTP.CORSAllowedOrigins),
		slog.String("amadeus_base_url", c.Amadeus.BaseURL),
		slog.String("amadeus_client_id", mask(c.Amadeus.ClientID)),
		slog.String("amadeus_client_secret", mask(c.Amadeus.ClientSecret)),
		slog.String("transport_api_base_url", c.TransportAPI.BaseURL),
		slog.String("transport_api_app_id", mask(c.TransportAPI.AppID)),
		slog.String("transport_api_app_key", mask(c.TransportAPI.AppKey)),
		slog.String("sequence_store", c.Search.SequenceStore),
		slog.String("redis_addr", c.Redis.Addr),
	)
}

func mask(secret string) string {
	if secret == "" {
		return "<unset>"
	}

	return "***"
}
