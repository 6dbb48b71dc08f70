// Command checkd serves the demo HTTP API: POST /api/check evaluates a
// password, GET /api/logs returns the processed auth-log feed.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/api"
	"github.com/fernandezvara/passcheck/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// One dictionary for the process lifetime; it is read-only after this
	// point and shared across all request goroutines.
	dict := passcheck.LoadDictionary(cfg.CommonListPath)
	checker := passcheck.New(dict)
	log.Printf("loaded %d common passwords", dict.Len())

	server := api.NewServer(checker, cfg.LogProcessedDir)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("checkd listening on port %s", cfg.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	log.Println("checkd stopped")
	return nil
}
