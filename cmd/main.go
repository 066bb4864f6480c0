package main

import (
	"context"
	"log/slog"
	"os"

	"bookstore-api/cmd/bootstrap"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Fail safe: never expose debug output on a misconfigured deployment.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           bookstore-api
// @version         1.0
// @description     Digital bookstore backend with payment validation

// @BasePath  /
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
}
