package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kelseyhightower/envconfig"

	"github.com/corporoom/taskhub/pkg/stringsutil"
)

type Config struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	UseHTTP2    bool     `envconfig:"USE_HTTP2"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process server config: %w", err)
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	cfg.CorsOrigins = stringsutil.RemoveEmptyStrings(stringsutil.TrimAll(cfg.CorsOrigins))
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	return &cfg, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
