package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`
}

// DSN renders the postgres connection string consumed by the db handle.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type HTTPConfig struct {
	Addr string `mapstructure:"HTTP_ADDR"`
}

type FieldConfig struct {
	// OfficerID attributes submitted readings. The deployment this replaces
	// pinned a single field officer instead of binding the authenticated
	// session; kept configurable until the auth binding lands.
	OfficerID string `mapstructure:"FIELD_OFFICER_ID"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:",squash"`
	HTTP     HTTPConfig     `mapstructure:",squash"`
	Field    FieldConfig    `mapstructure:",squash"`
	LogLevel string         `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration once at process start: .env file if present,
// then environment variables, then defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "fieldgrid")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "fieldgrid")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("HTTP_ADDR", ":3000")
	v.SetDefault("FIELD_OFFICER_ID", "U-002")
	v.SetDefault("LOG_LEVEL", "info")

	// AutomaticEnv alone does not populate Unmarshal; bind explicitly.
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"HTTP_ADDR", "FIELD_OFFICER_ID", "LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
