package httpapi

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"sftp-checker/internal/config"
)

var Module = fx.Options(
	fx.Provide(NewServer),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, cfg *config.Config, server *Server, logger *zap.Logger) {
	httpServer := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: server.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server failed", zap.Error(err))
				}
			}()
			logger.Info("http server listening",
				zap.String("address", cfg.ListenAddress))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.Shutdown(ctx)
		},
	})
}
