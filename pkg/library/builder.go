package library

import (
	"strings"

	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/normalize"
)

// Build constructs a catalog from raw artist and album records, cleaning every
// name through the mapping table and generic rules.
//
// Rows whose artist name is empty or cleans to nothing are skipped and
// counted, never fatal; batch loads must survive a handful of malformed rows.
// Album records are kept one-per-row with no deduplication, so duplicates in
// the source show up in the reports where they can be reviewed.
func Build(artistRecords, albumRecords []RawRecord, m *normalize.Mapping) *Catalog {
	c := newCatalog()

	for i, r := range artistRecords {
		name, err := normalize.Name(r.Name, m)
		if err != nil {
			c.skips = append(c.skips, Skip{Source: "artists", Index: i, Err: err})
			continue
		}
		c.ensureArtist(name)
	}

	for i, r := range albumRecords {
		name, err := normalize.Name(r.Name, m)
		if err != nil {
			c.skips = append(c.skips, Skip{Source: "albums", Index: i, Err: err})
			continue
		}
		if strings.TrimSpace(r.AlbumTitle) == "" {
			c.skips = append(c.skips, Skip{
				Source: "albums",
				Index:  i,
				Err:    errors.NewMalformedRecordError("albums", i+1, "missing album title"),
			})
			continue
		}
		title, err := normalize.Title(r.AlbumTitle, m)
		if err != nil {
			c.skips = append(c.skips, Skip{Source: "albums", Index: i, Err: err})
			continue
		}

		idx := c.ensureArtist(name)
		c.artists[idx].AlbumCount++

		album := Album{
			Artist:        c.artists[idx].Name,
			Title:         title,
			OriginalTitle: r.AlbumTitle,
			ReleaseDate:   r.ReleaseDate,
		}
		if !r.ReleaseDate.IsZero() {
			album.ReleaseYear = r.ReleaseDate.Year()
		}
		c.albums = append(c.albums, album)

		if title != r.AlbumTitle {
			c.review = append(c.review, CleanupPair{Original: r.AlbumTitle, Cleaned: title})
		}
	}

	return c
}
