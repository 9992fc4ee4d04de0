package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"

	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

const envPrefix = "STOREFRONT_"

// StripePlaceholderKey is the key shipped in sample env files.
const StripePlaceholderKey = "sk_test_YOUR_SECRET_KEY"

type Config struct {
	Primary Primary      `koanf:"primary"`
	Server  ServerConfig `koanf:"server"`
	Stripe  StripeConfig `koanf:"stripe"`
	CIMB    CIMBConfig   `koanf:"cimb"`
	Logger  LoggerConfig `koanf:"logger"`
}

type Primary struct {
	Env domain.Environment `koanf:"env" validate:"required,oneof=sandbox production"`
}

type ServerConfig struct {
	Name           string        `koanf:"name" validate:"required"`
	Port           string        `koanf:"port" validate:"required,numeric"`
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
	StaticDir      string        `koanf:"static_dir"`
	AllowedOrigins []string      `koanf:"allowed_origins" validate:"required,min=1"`
}

type StripeConfig struct {
	SecretKey string `koanf:"secret_key"`
	// APIURL overrides the Stripe API host, used against local fakes.
	APIURL string `koanf:"api_url" validate:"omitempty,url"`
	// Timeout bounds one session request end to end.
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type CIMBConfig struct {
	ClientID           string        `koanf:"client_id"`
	ClientSecret       string        `koanf:"client_secret"`
	SettlementAccount  string        `koanf:"settlement_account" validate:"required"`
	CreditorName       string        `koanf:"creditor_name" validate:"required"`
	DefaultDescription string        `koanf:"default_description" validate:"required"`
	BaseURL            string        `koanf:"base_url" validate:"omitempty,url"`
	ConnTimeout        time.Duration `koanf:"conn_timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":              "sandbox",
		"server.name":              "Northborne O Sabah Stripe Server",
		"server.port":              "4242",
		"server.base_url":          "http://localhost:8000",
		"server.read_timeout":      "15s",
		"server.write_timeout":     "30s",
		"server.idle_timeout":      "60s",
		"server.request_timeout":   "25s",
		"server.allowed_origins":   []string{"*"},
		"stripe.timeout":           "30s",
		"cimb.settlement_account":  "00012345678",
		"cimb.creditor_name":       "Northborne O Sabah - Amani Malaysia Group",
		"cimb.default_description": "Investment in Northborne O Sabah",
		"cimb.conn_timeout":        "10s",
		"logger.level":             "info",
		"logger.format":            "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Configured reports whether a usable Stripe key is present.
func (c StripeConfig) Configured() bool {
	return c.SecretKey != ""
}

func (c StripeConfig) IsPlaceholder() bool {
	return c.SecretKey == "" || c.SecretKey == StripePlaceholderKey
}

func (c CIMBConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Endpoint returns the bank base URL for the deployment mode unless overridden.
func (c CIMBConfig) Endpoint(mode domain.Environment) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if mode == domain.EnvironmentProduction {
		return "https://api.apiconnect.cimb.com"
	}
	return "https://sandbox.apiconnect.cimb.com"
}

func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
