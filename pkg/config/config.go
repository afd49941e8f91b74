package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	Port         string
	BucketName   string
	CatalogFile  string
	ViewsDir     string
	PublicDir    string
	Brand        string
	SessionTTL   time.Duration
	SignedURLTTL time.Duration
	LogLevel     zapcore.Level
}

// ErrInvalidPort is returned when PORT is not a valid TCP port
var ErrInvalidPort = errors.New("PORT must be a number between 1 and 65535")

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a known level
var ErrInvalidLogLevel = errors.New("LOG_LEVEL must be one of debug, info, warn, error")

// ErrInvalidDuration is returned when a TTL setting is not a positive duration
var ErrInvalidDuration = errors.New("duration must be positive")

// Configuration keys. Each one is also read from the upper-cased environment variable.
const (
	KeyPort         = "port"
	KeyBucketName   = "bucket_name"
	KeyCatalogFile  = "catalog_file"
	KeyViewsDir     = "views_dir"
	KeyPublicDir    = "public_dir"
	KeyBrand        = "brand"
	KeySessionTTL   = "session_ttl"
	KeySignedURLTTL = "signed_url_ttl"
	KeyLogLevel     = "log_level"
)

// New returns a viper instance with defaults, environment variables and the
// optional config file wired in. Callers may bind flags before calling FromViper.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyBucketName, "")
	v.SetDefault(KeyCatalogFile, "")
	v.SetDefault(KeyViewsDir, "./views")
	v.SetDefault(KeyPublicDir, "./public")
	v.SetDefault(KeyBrand, "SHATOM")
	v.SetDefault(KeySessionTTL, "30m")
	v.SetDefault(KeySignedURLTTL, "24h")
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("PORTFOLIO_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("portfolio")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "portfolio-gallery"))
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Load loads configuration from environment variables and the optional config file
func Load() (*Config, error) {
	return FromViper(New())
}

// FromViper reads and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	if cfgPath := os.Getenv("PORTFOLIO_CONFIG"); cfgPath != "" {
		if _, err := os.Stat(cfgPath); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	port := v.GetString(KeyPort)
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}

	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, v.GetString(KeyLogLevel))
	}

	sessionTTL, err := positiveDuration(v, KeySessionTTL)
	if err != nil {
		return nil, err
	}
	signedURLTTL, err := positiveDuration(v, KeySignedURLTTL)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		BucketName:   v.GetString(KeyBucketName),
		CatalogFile:  v.GetString(KeyCatalogFile),
		ViewsDir:     v.GetString(KeyViewsDir),
		PublicDir:    v.GetString(KeyPublicDir),
		Brand:        v.GetString(KeyBrand),
		SessionTTL:   sessionTTL,
		SignedURLTTL: signedURLTTL,
		LogLevel:     level,
	}, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s=%q: %w", strings.ToUpper(key), raw, ErrInvalidDuration)
	}
	return d, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Portfolio URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}
