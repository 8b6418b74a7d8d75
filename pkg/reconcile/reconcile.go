// Package reconcile computes the set differences and aggregations between the
// personal catalog and the external platform's artist list.
//
// Every query is a pure read: the catalog, exclude set, and external list are
// never mutated, and rerunning a query with unchanged inputs yields
// byte-identical output. Reports can be regenerated on demand.
package reconcile

import (
	"sort"

	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/library"
	"github.com/melodex/melodex/pkg/normalize"
)

// DefaultMinAlbums is the album-count threshold for the top-artists report.
const DefaultMinAlbums = 3

// AllArtists returns every canonical artist with its album count, ordered
// alphabetically by comparison key with insertion order breaking ties.
func AllArtists(c *library.Catalog) []library.Artist {
	artists := c.Artists()
	sortByName(artists)
	return artists
}

// TopArtists returns artists with at least minAlbums albums, ordered by
// descending count with alphabetical ties. A negative minAlbums is rejected,
// never clamped.
func TopArtists(c *library.Catalog, minAlbums int) ([]library.Artist, error) {
	if minAlbums < 0 {
		return nil, errors.NewValidationError("minAlbums", minAlbums, "must be >= 0")
	}

	var top []library.Artist
	for _, a := range c.Artists() {
		if a.AlbumCount >= minAlbums {
			top = append(top, a)
		}
	}
	sortByName(top)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].AlbumCount > top[j].AlbumCount
	})
	return top, nil
}

// Albums returns all album rows sorted by artist, then release date, then
// title, for the album report.
func Albums(c *library.Catalog) []library.Album {
	albums := c.Albums()
	sort.SliceStable(albums, func(i, j int) bool {
		ki, kj := normalize.Key(albums[i].Artist), normalize.Key(albums[j].Artist)
		if ki != kj {
			return ki < kj
		}
		if !albums[i].ReleaseDate.Equal(albums[j].ReleaseDate) {
			return albums[i].ReleaseDate.Before(albums[j].ReleaseDate)
		}
		return albums[i].Title < albums[j].Title
	})
	return albums
}

// MissingFromExternal returns catalog artists the external platform does not
// know about, minus the exclude set. Ordered alphabetically.
func MissingFromExternal(c *library.Catalog, ext *ExternalList, excl *ExcludeSet) []library.Artist {
	var missing []library.Artist
	for _, a := range c.Artists() {
		key := normalize.Key(a.Name)
		if ext.ContainsKey(key) || excl.ContainsKey(key) {
			continue
		}
		missing = append(missing, a)
	}
	sortByName(missing)
	return missing
}

// MissingFromCatalog returns the platform's artist names absent from the
// catalog, ordered alphabetically. The exclude set does not apply here: these
// are external-only entries flagged for addition, not suppression.
func MissingFromCatalog(c *library.Catalog, ext *ExternalList) []string {
	var missing []string
	for _, name := range ext.Names() {
		if c.HasArtistKey(normalize.Key(name)) {
			continue
		}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}

// sortByName orders artists alphabetically by comparison key. The stable sort
// keeps insertion order for artists whose keys collide.
func sortByName(artists []library.Artist) {
	sort.SliceStable(artists, func(i, j int) bool {
		return normalize.Key(artists[i].Name) < normalize.Key(artists[j].Name)
	})
}
