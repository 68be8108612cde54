package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/database"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/akilimali/parapheur/pkg/handlers"
	"github.com/akilimali/parapheur/pkg/logging"
	"github.com/akilimali/parapheur/pkg/middleware"
	"github.com/akilimali/parapheur/pkg/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(&cfg.Logging)
	logger.Info("configuration loaded", "env", cfg.Env(), "version", cfg.Version)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		return err
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return err
	}

	modules := NewModules(db, store, cfg, logger)

	routeSys := routes.New(logger)
	modules.Register(routeSys)
	registerHealth(routeSys, db)

	specJSON, err := loadOrGenerateSpec(cfg, routeSys, modules.Components())
	if err != nil {
		return err
	}
	registerSpec(routeSys, specJSON)

	handler := middleware.CORS(cfg.CORS)(middleware.Logger(logger)(routeSys.Build()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func registerHealth(rs routes.System, db interface{ PingContext(context.Context) error }) {
	rs.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
	})

	rs.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			if err := db.PingContext(r.Context()); err != nil {
				handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		},
	})
}

func registerSpec(rs routes.System, specJSON []byte) {
	rs.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/api/openapi.json",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(specJSON)
		},
	})
}
