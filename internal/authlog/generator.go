// Package authlog generates, filters and scans synthetic sshd auth logs for
// the demo log endpoint. Nothing here feeds back into password evaluation.
package authlog

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sample sets used by the generator, mirroring a small brute-force attempt.
var (
	sampleIPs   = []string{"192.168.1.105", "10.0.0.42", "172.16.0.5", "45.33.22.11"}
	sampleUsers = []string{"root", "admin", "user1", "guest", "db_admin"}
)

// failedRatio is the share of generated lines that are failed logins.
const failedRatio = 0.8

// Generator writes batches of synthetic sshd auth-log lines into a raw
// directory, one file per batch, for the watcher to pick up.
type Generator struct {
	Dir       string
	BatchSize int
	Interval  time.Duration

	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator writing to dir. A zero batch size defaults
// to 5 lines per file, a zero interval to 5 seconds.
func NewGenerator(dir string, seed int64) *Generator {
	return &Generator{
		Dir:       dir,
		BatchSize: 5,
		Interval:  5 * time.Second,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
	}
}

// Line produces one synthetic sshd log line.
func (g *Generator) Line() string {
	timestamp := g.now().Format("Jan 02 15:04:05")
	ip := sampleIPs[g.rng.Intn(len(sampleIPs))]
	user := sampleUsers[g.rng.Intn(len(sampleUsers))]

	verb := "Accepted"
	if g.rng.Float64() < failedRatio {
		verb = "Failed"
	}
	return fmt.Sprintf("%s my-server sshd[1234]: %s password for %s from %s port 54321 ssh2",
		timestamp, verb, user, ip)
}

// WriteBatch writes one batch file named auth_<unix>.log into the raw
// directory, creating it if needed, and returns the file path.
func (g *Generator) WriteBatch() (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create raw dir: %w", err)
	}

	size := g.BatchSize
	if size <= 0 {
		size = 5
	}
	var b strings.Builder
	for i := 0; i < size; i++ {
		b.WriteString(g.Line())
		b.WriteString("\n")
	}

	path := filepath.Join(g.Dir, fmt.Sprintf("auth_%d.log", g.now().UnixNano()))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write batch: %w", err)
	}
	return path, nil
}

// Run writes a batch every interval until the context is cancelled.
func (g *Generator) Run(ctx context.Context, onBatch func(path string)) error {
	interval := g.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		path, err := g.WriteBatch()
		if err != nil {
			return err
		}
		if onBatch != nil {
			onBatch(path)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
