package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	httpapi "carbon-backend/app/src/api/http"
	"carbon-backend/app/src/infra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := initApplication(ctx, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise application: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg := app.Config
	logger := app.Logger

	infra.LogConfig(ctx, logger, cfg)
	infra.StartMetricsServer(logger, cfg.MetricsPort)

	httpServer := newHTTPServer(cfg, app)

	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		logger.Fatalf(ctx, "failed to listen on HTTP port %s: %v", cfg.HTTPPort, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf(ctx, "HTTP server shutdown error: %v", err)
		}
	}()

	logger.Printf(ctx, "HTTP server listening on %s", listener.Addr())
	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf(ctx, "server error: %v", err)
	}

	logger.Println(ctx, "server stopped")
}

func newHTTPServer(cfg infra.Config, app *application) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           httpapi.NewServer(app.Ingest, app.Cache, app.Readings, cfg.ReadingsLimit, app.Logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
