package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/devserver"
	"github.com/five82/cumplesito/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// Missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("CUMPLESITO_DEV_ADDR", "127.0.0.1:8000"), "listen address")
	secret := flag.String("secret", os.Getenv("CUMPLESITO_SECRET_KEY"), "JWT signing secret (optional, a fixed dev secret is used when empty)")
	frontend := flag.String("frontend", envOr("CUMPLESITO_FRONTEND_URL", "http://localhost:5173"), "base URL used for share links")
	level := flag.String("log-level", envOr("CUMPLESITO_LOG_LEVEL", "info"), "log level")
	seed := flag.Bool("seed", true, "create the demo account and wishlist")
	flag.Parse()

	log := logging.New(*level, os.Stdout)

	srv := devserver.New(devserver.Options{
		Secret:      *secret,
		FrontendURL: *frontend,
		Logger:      log,
	})

	if *seed {
		id, err := devserver.Seed(srv.Store())
		if err != nil {
			fmt.Fprintf(os.Stderr, "cumplesito-devserver: %v\n", err)
			return 1
		}
		log.WithFields(logrus.Fields{
			"wishlist_id": id,
			"email":       devserver.DemoEmail,
			"password":    devserver.DemoPassword,
		}).Info("demo data seeded")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", *addr).Info("record store listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "cumplesito-devserver: %v\n", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
		return 1
	}
	log.Info("record store stopped")
	return 0
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
