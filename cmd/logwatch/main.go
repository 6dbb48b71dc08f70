// Command logwatch watches the raw log directory and keeps only the
// interesting lines (failed logins, errors) in the processed directory.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/fernandezvara/passcheck/internal/authlog"
)

func main() {
	var rawDir, processedDir string
	flag.StringVar(&rawDir, "raw", "logs/raw", "Directory to watch for new log files")
	flag.StringVar(&processedDir, "processed", "logs/processed", "Directory for filtered log files")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	proc, err := authlog.NewProcessor(rawDir, processedDir)
	if err != nil {
		log.Fatalf("logwatch: %v", err)
	}

	log.Printf("log processor started, watching %s", rawDir)
	err = proc.Run(ctx, func(path string, kept int) {
		log.Printf("processed %s (%d lines kept)", path, kept)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("logwatch: %v", err)
	}
}
