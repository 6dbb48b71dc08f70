package authlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Entry is one parsed sshd password-auth line.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"` // "Failed" or "Accepted"
	User      string `json:"user"`
	IP        string `json:"ip"`
}

// linePattern matches the sshd password lines the generator emits:
//
//	Jan 02 15:04:05 my-server sshd[1234]: Failed password for root from 10.0.0.42 port 54321 ssh2
var linePattern = regexp.MustCompile(`^(\w+ +\d+ [\d:]+) \S+ sshd\[\d+\]: (Failed|Accepted) password for (\S+) from (\S+) port`)

// ParseLine parses one log line, returning false for lines that are not
// sshd password events.
func ParseLine(line string) (Entry, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Timestamp: m[1], Status: m[2], User: m[3], IP: m[4]}, true
}

// ScanDir reads every .log file in dir (lexical filename order, so batch
// files come back oldest first) and returns the parsed entries.
func ScanDir(dir string) ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(matches)

	var entries []Entry
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			// Skip files removed mid-scan.
			continue
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if entry, ok := ParseLine(scanner.Text()); ok {
				entries = append(entries, entry)
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return entries, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return entries, nil
}

// FailedByIP counts failed logins per source address.
func FailedByIP(entries []Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Status == "Failed" {
			counts[e.IP]++
		}
	}
	return counts
}
