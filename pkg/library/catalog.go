package library

import (
	"github.com/melodex/melodex/pkg/normalize"
)

// Catalog is the in-memory catalog built for one run. It is populated by Build
// and read-only afterwards; reconciliation queries never mutate it.
type Catalog struct {
	artists []Artist       // insertion order
	index   map[string]int // comparison key -> position in artists
	albums  []Album        // one per usable input record, source order
	review  []CleanupPair
	skips   []Skip
}

func newCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// ensureArtist returns the position of the artist with the given cleaned name,
// adding it with a zero album count when unseen. Artists are deduplicated by
// comparison key; the first-seen spelling is kept for display.
func (c *Catalog) ensureArtist(name string) int {
	key := normalize.Key(name)
	if i, ok := c.index[key]; ok {
		return i
	}
	c.artists = append(c.artists, Artist{Name: name})
	c.index[key] = len(c.artists) - 1
	return len(c.artists) - 1
}

// Artists returns all canonical artists in insertion order.
func (c *Catalog) Artists() []Artist {
	out := make([]Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Albums returns all album rows in source order.
func (c *Catalog) Albums() []Album {
	out := make([]Album, len(c.albums))
	copy(out, c.albums)
	return out
}

// CleanupReview returns the (original, cleaned) audit pairs for every album
// whose title changed during cleanup.
func (c *Catalog) CleanupReview() []CleanupPair {
	out := make([]CleanupPair, len(c.review))
	copy(out, c.review)
	return out
}

// HasArtistKey reports whether an artist with the given comparison key exists.
func (c *Catalog) HasArtistKey(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Skips returns the records skipped during the build.
func (c *Catalog) Skips() []Skip {
	out := make([]Skip, len(c.skips))
	copy(out, c.skips)
	return out
}

// Skipped returns the number of records skipped during the build.
func (c *Catalog) Skipped() int {
	return len(c.skips)
}
