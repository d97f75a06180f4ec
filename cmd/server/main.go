// Command server runs the demo API: every endpoint is declared as binder
// fields and mounted through the handler registry.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yegordb/bindkit/handler"
	"github.com/yegordb/bindkit/modules/account"
	"github.com/yegordb/bindkit/modules/catalog"
	"github.com/yegordb/bindkit/modules/media"
	"github.com/yegordb/bindkit/modules/tracking"
	"github.com/yegordb/bindkit/pkg/config"
	"github.com/yegordb/bindkit/pkg/httpserver"
	"github.com/yegordb/bindkit/pkg/logger"
)

type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Server httpserver.Config
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevelString(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("app", "bindkit-demo")),
	)

	reg := handler.NewRegistry(handler.WithLogger(log))
	catalog.RegisterErrors(reg)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if err := handler.Mount(r, reg, catalog.Routes()...); err != nil {
		log.Error("failed to mount catalog routes", logger.Error(err))
		os.Exit(1)
	}
	if err := handler.Mount(r, reg, account.Routes()...); err != nil {
		log.Error("failed to mount account routes", logger.Error(err))
		os.Exit(1)
	}
	if err := handler.Mount(r, reg, media.Routes()...); err != nil {
		log.Error("failed to mount media routes", logger.Error(err))
		os.Exit(1)
	}
	if err := handler.Mount(r, reg, tracking.Routes()...); err != nil {
		log.Error("failed to mount tracking routes", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
