package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/noborus/ov/oviewer"

	"quickpick/internal/corpus"
)

// CorpusListing renders one `glyph  name` line per corpus entry
func CorpusListing(c *corpus.Corpus) string {
	var b strings.Builder
	for _, e := range c.Entries() {
		b.WriteString(runewidth.FillRight(e.Glyph, 3))
		b.WriteString("  ")
		b.WriteString(e.Name)
		b.WriteString("\n")
	}
	return b.String()
}

// ShowCorpusInPager lists the corpus using ov pager
func ShowCorpusInPager(c *corpus.Corpus) error {
	if c == nil {
		return fmt.Errorf("corpus not set")
	}

	root, err := oviewer.NewRoot(strings.NewReader(CorpusListing(c)))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with the screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
