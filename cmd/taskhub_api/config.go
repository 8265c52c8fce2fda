package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/corporoom/taskhub/internal/storage/factory"
	"github.com/corporoom/taskhub/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("APP_ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type AuthConfig struct {
	Secret            string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer            string        `envconfig:"JWT_ISSUER" default:"taskhub"`
	AccessTTL         time.Duration `envconfig:"JWT_ACCESS_TTL"`
	RefreshTTL        time.Duration `envconfig:"JWT_REFRESH_TTL"`
	RestrictedDomains []string      `envconfig:"RESTRICTED_EMAIL_DOMAINS"`
}

type SearchConfig struct {
	Enabled   bool     `envconfig:"SEARCH_ENABLED"`
	Addresses []string `envconfig:"ES_ADDRESSES" default:"http://localhost:9200"`
	IndexName string   `envconfig:"ES_INDEX" default:"tasks"`
	Username  string   `envconfig:"ES_USERNAME"`
	Password  string   `envconfig:"ES_PASSWORD"`
}

type APIConfig struct {
	factory.StorageConfig
	Auth   AuthConfig
	Search SearchConfig
}

func (as *AppConfig) Load() (*APIConfig, error) {
	if err := env.LoadDotEnv("cmd/taskhub_api/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	var authCfg AuthConfig
	if err := envconfig.Process("", &authCfg); err != nil {
		slog.Error("Failed to load auth configuration from environment", "error", err)
		return nil, err
	}

	var searchCfg SearchConfig
	if err := envconfig.Process("", &searchCfg); err != nil {
		slog.Error("Failed to load search configuration from environment", "error", err)
		return nil, err
	}

	return &APIConfig{
		StorageConfig: *storageCfg,
		Auth:          authCfg,
		Search:        searchCfg,
	}, nil
}
