// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/melodex/melodex/pkg/library"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ArtistsToTableData converts artist report rows to table format.
func ArtistsToTableData(artists []library.Artist) Data {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{a.Name, strconv.Itoa(a.AlbumCount)})
	}
	return Data{
		Headers:         []string{"Artist", "Album Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// AlbumsToTableData converts album report rows to table format.
func AlbumsToTableData(albums []library.Album) Data {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		year := ""
		if a.ReleaseYear != 0 {
			year = strconv.Itoa(a.ReleaseYear)
		}
		rows = append(rows, []string{a.Title, a.Artist, year})
	}
	return Data{
		Headers:         []string{"Album Title", "Artist", "Release Year"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight},
	}
}

// NamesToTableData converts a plain name list to a one-column table.
func NamesToTableData(header string, names []string) Data {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	return Data{Headers: []string{header}, Rows: rows}
}

// ReviewToTableData converts cleanup audit pairs to table format.
func ReviewToTableData(pairs []library.CleanupPair) Data {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.Original, p.Cleaned})
	}
	return Data{Headers: []string{"Original Album Title", "Album Title"}, Rows: rows}
}
