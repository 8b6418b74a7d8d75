// Package library builds the in-memory music catalog from raw source records.
// Every run constructs a fresh immutable snapshot; there is no update-in-place
// and no caching across runs.
package library

import "time"

// RawRecord is one row as read from an artist or album source. No uniqueness
// is guaranteed; duplicates in the source surface downstream for review.
type RawRecord struct {
	Name        string
	AlbumTitle  string
	ReleaseDate time.Time
}

// Artist is a canonical artist with the number of albums attributed to it.
type Artist struct {
	Name       string `json:"artist" yaml:"artist"`
	AlbumCount int    `json:"album_count" yaml:"album_count"`
}

// Album is one cleaned album row. OriginalTitle keeps the source spelling for
// the cleanup audit; Title is the canonical form and a pure function of
// OriginalTitle plus the mapping table.
type Album struct {
	Artist        string    `json:"artist" yaml:"artist"`
	Title         string    `json:"title" yaml:"title"`
	OriginalTitle string    `json:"original_title,omitempty" yaml:"original_title,omitempty"`
	ReleaseDate   time.Time `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	ReleaseYear   int       `json:"release_year,omitempty" yaml:"release_year,omitempty"`
}

// CleanupPair is one audit entry recorded when cleanup changed an album title.
type CleanupPair struct {
	Original string `json:"original" yaml:"original"`
	Cleaned  string `json:"cleaned" yaml:"cleaned"`
}

// Skip records a source row that could not be used. Skips are aggregated, not
// fatal; the caller decides whether a nonzero count matters.
type Skip struct {
	Source string // "artists" or "albums"
	Index  int    // zero-based record index within its source
	Err    error
}
