package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickpick/internal/corpus"
	"quickpick/internal/domain"
)

func TestCorpusListing(t *testing.T) {
	c, err := corpus.New([]domain.Entry{
		{Glyph: "😀", Name: "grinning face"},
		{Glyph: "©", Name: "copyright sign"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(CorpusListing(c), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "😀"))
	assert.True(t, strings.HasSuffix(lines[0], "  grinning face"))
	assert.True(t, strings.HasSuffix(lines[1], "  copyright sign"))
}

func TestShowCorpusInPagerNeedsCorpus(t *testing.T) {
	assert.Error(t, ShowCorpusInPager(nil))
}
