package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Resolver  ResolverConfig
	Providers ProvidersConfig
	App       AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text, console
}

// ResolverConfig bounds the reverse geocoding loop
type ResolverConfig struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	UserAgent      string
}

// ProvidersConfig holds upstream endpoints
type ProvidersConfig struct {
	NominatimURL  string
	RandomUserURL string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Timezones bool // annotate addresses with their IANA timezone
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.idconsole")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("resolver.maxattempts", 5)
	v.SetDefault("resolver.attempttimeout", 3*time.Second)
	v.SetDefault("resolver.useragent", "IDConsole/7.0")
	v.SetDefault("providers.nominatimurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("providers.randomuserurl", "https://randomuser.me/api/")
	v.SetDefault("app.timezones", true)

	// Read from environment variables, e.g. IDCONSOLE_RESOLVER_MAXATTEMPTS
	v.SetEnvPrefix("IDCONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Resolver.MaxAttempts < 1 {
		return fmt.Errorf("resolver.maxAttempts must be at least 1, got %d", c.Resolver.MaxAttempts)
	}
	if c.Resolver.AttemptTimeout <= 0 {
		return fmt.Errorf("resolver.attemptTimeout must be positive, got %s", c.Resolver.AttemptTimeout)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(out io.Writer) *slog.Logger {
	level := c.level()

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "console":
		handler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: "Jan 02 15:04:05.000",
			NoColor:    !isTerminal(out),
		})
	default: // "text" or anything else
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

func (c *Config) level() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
