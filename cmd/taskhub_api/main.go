// Package main TaskHub API
// @title TaskHub API
// @version 1.0
// @description Task and project management backend with JWT authentication
// @contact.name API Support
// @contact.email support@corporoom.com
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/corporoom/taskhub/docs"
	"github.com/corporoom/taskhub/internal/auth"
	"github.com/corporoom/taskhub/internal/notify"
	"github.com/corporoom/taskhub/internal/router"
	"github.com/corporoom/taskhub/internal/search"
	"github.com/corporoom/taskhub/internal/server"
	"github.com/corporoom/taskhub/internal/storage/factory"
	pkgserver "github.com/corporoom/taskhub/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	tokens, err := auth.NewTokenManager(auth.TokenManagerConfig{
		Secret:     cfg.Auth.Secret,
		Issuer:     cfg.Auth.Issuer,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})
	if err != nil {
		slog.Error("Failed to create token manager", "error", err)
		os.Exit(1)
		return
	}

	stores, err := factory.NewStores(context.Background(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create stores", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, pkgserver.NewPingHealthChecker(stores.Ping)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupValidator().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	notifier := notify.Notifier(notify.NewLogNotifier(slog.Default()))
	var taskOpts []router.TaskRouterOption

	if cfg.Search.Enabled {
		searchCfg := search.ClientConfig{
			Addresses: cfg.Search.Addresses,
			IndexName: cfg.Search.IndexName,
			Username:  cfg.Search.Username,
			Password:  cfg.Search.Password,
		}

		indexer, err := search.NewIndexer(s.Context(), searchCfg)
		if err != nil {
			slog.Error("Failed to create search indexer", "error", err)
			os.Exit(1)
			return
		}
		notifier = notify.NewMulti(notifier, indexer)

		searcher, err := search.NewSearcher(searchCfg)
		if err != nil {
			slog.Error("Failed to create searcher", "error", err)
			os.Exit(1)
			return
		}
		taskOpts = append(taskOpts, router.WithSearcher(searcher))
		slog.Info("Full-text search enabled", "index", cfg.Search.IndexName)
	} else {
		slog.Info("Full-text search disabled")
	}

	authMw := auth.Middleware(tokens)

	var authOpts []router.AuthRouterOption
	if len(cfg.Auth.RestrictedDomains) > 0 {
		authOpts = append(authOpts, router.WithRestrictedDomains(cfg.Auth.RestrictedDomains))
	}

	router.NewAuthRouter(s.Echo, stores.Users, tokens, authOpts...).Bind()
	router.NewUserRouter(s.Echo, stores.Users, authMw).Bind()
	router.NewCompanyRouter(s.Echo, stores.Companies, authMw).Bind()
	router.NewProjectRouter(s.Echo, stores.Projects, authMw).Bind()
	router.NewTaskRouter(s.Echo, stores.Tasks, notifier, authMw, taskOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		stores.Close()
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
