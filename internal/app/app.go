package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/config"
	"github.com/heartmarshall/dictionary-api/internal/service/dictionary"
	"github.com/heartmarshall/dictionary-api/internal/transport/middleware"
	"github.com/heartmarshall/dictionary-api/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, serves HTTP until ctx is cancelled, then shuts the server down
// gracefully and disconnects from the store.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting application",
		zap.String("version", BuildVersion()),
		zap.String("log_level", cfg.Log.Level),
		zap.String("store", cfg.Store.Backend),
	)

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("close store", zap.Error(err))
			return
		}
		logger.Info("store disconnected")
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, store, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http.server")),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires the dictionary service and HTTP layer on top of store.
func NewHandler(cfg *config.Config, store *Store, logger *zap.Logger) http.Handler {
	svc := dictionary.NewService(logger, store.Words)
	resp := rest.NewResponder(logger, cfg.HTTP.StrictStatus)

	return rest.NewRouter(
		rest.NewDictionaryHandler(svc, resp),
		rest.NewHealthHandler(store.Pinger, BuildVersion()),
		resp,
		middleware.Chain(
			middleware.RequestID(),
			middleware.Logger(logger.Named("http")),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		),
	)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
