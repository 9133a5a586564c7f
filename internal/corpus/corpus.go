// Package corpus holds the fixed set of selectable emoji.
//
// A Corpus is built once at startup, either from the embedded table or from
// a JSON file with the same shape, and is never modified afterwards.
package corpus

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"quickpick/internal/domain"
)

//go:embed emojis.json
var embedded []byte

// ErrEmpty is returned when a source yields no usable entries
var ErrEmpty = errors.New("corpus has no entries")

// Corpus is an immutable, ordered list of emoji entries
type Corpus struct {
	entries []domain.Entry
}

// New builds a corpus from entries, keeping their order.
// Entries without a glyph or a name are dropped.
func New(entries []domain.Entry) (*Corpus, error) {
	kept := make([]domain.Entry, 0, len(entries))
	for i, e := range entries {
		e.Glyph = strings.TrimSpace(e.Glyph)
		e.Name = strings.TrimSpace(e.Name)
		if e.Glyph == "" || e.Name == "" {
			log.Printf("corpus: skipping entry %d with empty glyph or name", i)
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, ErrEmpty
	}
	return &Corpus{entries: kept}, nil
}

// Default returns the embedded corpus
func Default() (*Corpus, error) {
	c, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded corpus: %w", err)
	}
	return c, nil
}

// Parse decodes a JSON array of {"emoji", "name", "category"} objects
func Parse(data []byte) (*Corpus, error) {
	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	return New(entries)
}

// Load reads and decodes a corpus from r
func Load(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return Parse(data)
}

// LoadFile loads a corpus from path, or the embedded corpus when path is empty
func LoadFile(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of entries
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in corpus order
func (c *Corpus) Entries() []domain.Entry {
	out := make([]domain.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
