package authlog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// keepMarkers are the substrings that make a raw log line worth keeping.
var keepMarkers = []string{"Failed", "ERROR", "Critical"}

// Processor watches a raw log directory and moves the interesting lines of
// each new file into the processed directory, deleting the raw file after.
type Processor struct {
	RawDir       string
	ProcessedDir string

	watcher *fsnotify.Watcher
}

// NewProcessor creates a processor for the given directory pair. Both
// directories are created if missing so the watch can start immediately.
func NewProcessor(rawDir, processedDir string) (*Processor, error) {
	for _, dir := range []string{rawDir, processedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(rawDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", rawDir, err)
	}

	return &Processor{
		RawDir:       rawDir,
		ProcessedDir: processedDir,
		watcher:      watcher,
	}, nil
}

// Run consumes watcher events until the context is cancelled. Each created
// or written file in the raw directory is processed once it appears.
func (p *Processor) Run(ctx context.Context, onProcessed func(path string, kept int)) error {
	defer p.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-p.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			kept, err := p.ProcessFile(event.Name)
			if err != nil {
				// A file may vanish between the event and the read; skip it.
				continue
			}
			if onProcessed != nil {
				onProcessed(event.Name, kept)
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// ProcessFile filters one raw log file into the processed directory and
// deletes the original. It returns the number of lines kept.
func (p *Processor) ProcessFile(rawPath string) (int, error) {
	in, err := os.Open(rawPath)
	if err != nil {
		return 0, fmt.Errorf("open raw file: %w", err)
	}
	defer in.Close()

	outPath := filepath.Join(p.ProcessedDir, filepath.Base(rawPath))
	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create processed file: %w", err)
	}
	defer out.Close()

	kept := 0
	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if keepLine(line) {
			fmt.Fprintln(writer, line)
			kept++
		}
	}
	if err := scanner.Err(); err != nil {
		return kept, fmt.Errorf("read raw file: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return kept, fmt.Errorf("flush processed file: %w", err)
	}

	if err := os.Remove(rawPath); err != nil {
		return kept, fmt.Errorf("remove raw file: %w", err)
	}
	return kept, nil
}

func keepLine(line string) bool {
	for _, marker := range keepMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
