// Command loggen simulates an ssh brute-force attempt by writing batches of
// synthetic auth-log files for logwatch to pick up.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernandezvara/passcheck/internal/authlog"
)

func main() {
	var (
		dir      string
		interval time.Duration
		batch    int
	)
	flag.StringVar(&dir, "dir", "logs/raw", "Directory to write raw log batches into")
	flag.DurationVar(&interval, "interval", 5*time.Second, "Delay between batches")
	flag.IntVar(&batch, "batch", 5, "Lines per batch file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := authlog.NewGenerator(dir, time.Now().UnixNano())
	gen.Interval = interval
	gen.BatchSize = batch

	log.Printf("starting attack simulator, writing to %s (ctrl-c to stop)", dir)
	err := gen.Run(ctx, func(path string) {
		log.Printf("generated new log batch: %s", path)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("loggen: %v", err)
	}
	log.Println("stopping simulator")
}
