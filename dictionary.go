package passcheck

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

//go:embed data/common_passwords.txt
var seedPasswordsData string

// Dictionary holds the known-weak password list. The set backs exact-match
// lookups; words keeps insertion order (seed entries first, then file lines in
// file order) so the capped substring scan is deterministic across runs.
type Dictionary struct {
	set   map[string]struct{}
	words []string
}

// NewDictionary builds a dictionary containing only the embedded seed list.
func NewDictionary() *Dictionary {
	d := &Dictionary{set: make(map[string]struct{})}
	for _, line := range strings.Split(seedPasswordsData, "\n") {
		d.add(line)
	}
	return d
}

// LoadDictionary builds the seed dictionary unioned with the file at path,
// one password per line. A missing or unreadable file is not an error: the
// evaluator must keep working with the seed list alone, so any I/O failure
// falls back silently to the seed entries.
func LoadDictionary(path string) *Dictionary {
	d := NewDictionary()
	if path == "" {
		return d
	}

	f, err := os.Open(path)
	if err != nil {
		return d
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		d.add(scanner.Text())
	}
	return d
}

// add inserts one candidate line, skipping blanks and # comments.
func (d *Dictionary) add(line string) {
	word := strings.TrimSpace(line)
	if word == "" || strings.HasPrefix(word, "#") {
		return
	}
	word = strings.ToLower(word)
	if _, ok := d.set[word]; ok {
		return
	}
	d.set[word] = struct{}{}
	d.words = append(d.words, word)
}

// Contains checks for an exact entry. Callers pass an already lower-cased word.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// Len returns the number of distinct entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the entries in insertion order. The returned slice is shared;
// callers must not mutate it.
func (d *Dictionary) Words() []string {
	return d.words
}
