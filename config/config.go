// Package config reads the configuration file, environment and flags once at
// startup and turns them into a read-only Config value
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{DriverSQLite, DriverPostgres}

	// ErrNoSecret is returned when no JWT signing secret was provided
	ErrNoSecret = errors.New("no jwt secret provided")
)

type Config struct {
	LogLevel string
	Host     Host
	JWT      JWT
	Database Database
	Security Security
	Gen      Generator
}

type Host struct {
	Port       int
	CORS       []string
	SSLEnabled bool
	MaxBody    int64
}

type JWT struct {
	Secret []byte
	TTL    time.Duration
}

type Database struct {
	Driver      string
	DSN         string
	AutoMigrate bool
}

type Security struct {
	BcryptCost int
}

type Generator struct {
	APIKey   string
	Model    string
	Endpoint string
}

// GenSecret returns a random hex secret suitable for jwt.secret
func GenSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Load reads config.toml (optional), the environment and args. The returned
// value is never modified afterwards
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("flashcards-api", pflag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to a config.toml file")
	fs.Int("port", 0, "Port to listen on")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	if f := fs.Lookup("port"); f.Changed {
		v.Set("host.port", f.Value.String())
	}

	if *cfgPath != "" {
		v.SetConfigFile(*cfgPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")

	v.BindEnv("host.port", "HOST_PORT")
	v.BindEnv("host.cors", "HOST_CORS")
	v.BindEnv("host.ssl_enabled", "HOST_SSL_ENABLED")
	v.BindEnv("host.max_body", "UPLOAD_MAX_BODY")

	v.BindEnv("jwt.secret", "SECRET_KEY", "JWT_SECRET")
	v.BindEnv("jwt.ttl_minutes", "ACCESS_TOKEN_EXPIRE_MINUTES")

	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.dsn", "DATABASE_URL")
	v.BindEnv("database.auto_migrate", "DATABASE_AUTO_MIGRATE")

	v.BindEnv("security.bcrypt_cost", "SECURITY_BCRYPT_COST")

	v.BindEnv("generator.api_key", "GEMINI_API_KEY")
	v.BindEnv("generator.model", "GEMINI_MODEL")
	v.BindEnv("generator.endpoint", "GEMINI_ENDPOINT")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors", "http://localhost:5173")
	v.SetDefault("host.ssl_enabled", false)
	v.SetDefault("host.max_body", 1<<20)

	v.SetDefault("jwt.ttl_minutes", 60)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "database.db")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("security.bcrypt_cost", bcrypt.DefaultCost)

	v.SetDefault("generator.model", "gemini-1.5-flash")
	v.SetDefault("generator.endpoint", "https://generativelanguage.googleapis.com/v1beta")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || *cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		LogLevel: strings.ToLower(v.GetString("app.log_level")),
		Host: Host{
			Port:       v.GetInt("host.port"),
			CORS:       splitList(v.GetString("host.cors")),
			SSLEnabled: v.GetBool("host.ssl_enabled"),
			MaxBody:    v.GetInt64("host.max_body"),
		},
		JWT: JWT{
			Secret: []byte(v.GetString("jwt.secret")),
			TTL:    time.Duration(v.GetInt("jwt.ttl_minutes")) * time.Minute,
		},
		Database: Database{
			Driver:      strings.ToLower(v.GetString("database.driver")),
			DSN:         v.GetString("database.dsn"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		Security: Security{
			BcryptCost: v.GetInt("security.bcrypt_cost"),
		},
		Gen: Generator{
			APIKey:   v.GetString("generator.api_key"),
			Model:    v.GetString("generator.model"),
			Endpoint: strings.TrimRight(v.GetString("generator.endpoint"), "/"),
		},
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return errors.New("invalid log level provided")
	}

	if c.Host.Port <= 0 || c.Host.Port > 65535 {
		return errors.New("invalid port provided")
	}

	if c.Host.MaxBody <= 0 {
		return errors.New("host.max_body must be bigger than 0")
	}

	if len(c.JWT.Secret) == 0 {
		return ErrNoSecret
	}

	if c.JWT.TTL <= 0 {
		return errors.New("jwt.ttl_minutes must be bigger than 0")
	}

	if !slices.Contains(validDrivers, c.Database.Driver) {
		return errors.New("invalid database driver provided")
	}

	if c.Database.DSN == "" {
		return errors.New("no database dsn provided")
	}

	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("security.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func splitList(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
