package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dgallion1/sitekit/internal/config"
	"github.com/dgallion1/sitekit/internal/server"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	dir, err := filepath.Abs(cfg.ServeDir)
	if err != nil {
		log.Error("resolve serve dir", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := server.Listen(ctx, cfg.BindHost, cfg.BasePort, cfg.PortAttempts, log)
	if err != nil {
		log.Error("could not bind", "error", err)
		os.Exit(1)
	}
	port := server.Port(ln)

	srv := server.NewServer(dir, server.Options{RenderMarkdown: cfg.RenderMarkdown}, log)
	httpServer := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown incomplete", "error", err)
		}
	}()

	server.Banner(os.Stdout, server.BannerInfo{
		Dir:   dir,
		Port:  port,
		LANIP: server.LANIP(cfg.LANProbeAddr),
	})
	log.Info("starting server", "addr", ln.Addr().String(), "dir", dir)

	if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-done
	log.Info("server stopped")
}
