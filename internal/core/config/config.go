package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"dockyard/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the dock client.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the local API listens.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// Timezone names the location used for "today" and CSV date stamps.
	Timezone string `mapstructure:"LOCATION_TIMEZONE" default:"Local"`

	Storage StorageConfig `mapstructure:",squash"`

	DockAPI DockAPIConfig `mapstructure:",squash"`

	Proxy ProxyConfig `mapstructure:",squash"`
}

// StorageConfig points at the durable key-value store.
type StorageConfig struct {
	// RedisURL has the form redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// ViewTTLHours bounds how long the persisted current view survives.
	ViewTTLHours int `mapstructure:"VIEW_TTL_HOURS" default:"12"`
}

// DockAPIConfig holds the endpoints of the dock backend.
type DockAPIConfig struct {
	// AuthURL serves /login and /register.
	AuthURL string `mapstructure:"AUTH_URL" required:"true"`
	// BaseURL serves the /api/... routes.
	BaseURL string `mapstructure:"DOCK_API_URL" required:"true"`
	// UploadURL is the CSV ingestion service.
	UploadURL string `mapstructure:"UPLOAD_URL" required:"true"`
	// LiveURL is the WebSocket relay endpoint.
	LiveURL string `mapstructure:"LIVE_URL" required:"true"`
	// TimeoutSeconds caps every REST call. Zero disables the timeout.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"30"`
}

// ProxyConfig configures an optional outbound proxy for REST calls.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Timeout returns the REST timeout as a duration.
func (c DockAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ViewTTL returns the view persistence lifetime.
func (c StorageConfig) ViewTTL() time.Duration {
	return time.Duration(c.ViewTTLHours) * time.Hour
}

// Settings converts the proxy block into transport settings.
func (c ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  c.Enabled,
		Hostname: c.Hostname,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
	}
}

// Location resolves the configured timezone, falling back to time.Local.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged key to the environment and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
