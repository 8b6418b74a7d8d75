package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/normalize"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestBuildMergesArtistsByKey(t *testing.T) {
	m := normalize.EmptyMapping()

	artists := []RawRecord{
		{Name: "Beyoncé"},
		{Name: "beyonce"}, // same artist, different spelling
		{Name: "Drake"},
	}
	albums := []RawRecord{
		{Name: "BEYONCE", AlbumTitle: "Lemonade"},
		{Name: "Drake", AlbumTitle: "Views"},
		{Name: "Drake", AlbumTitle: "Scorpion"},
	}

	c := Build(artists, albums, m)

	got := c.Artists()
	require.Len(t, got, 2)

	// First-seen spelling wins for display.
	assert.Equal(t, Artist{Name: "Beyoncé", AlbumCount: 1}, got[0])
	assert.Equal(t, Artist{Name: "Drake", AlbumCount: 2}, got[1])
	assert.True(t, c.HasArtistKey(normalize.Key("Beyoncé")))
	assert.Zero(t, c.Skipped())
}

func TestBuildSkipsMalformedRows(t *testing.T) {
	m := normalize.EmptyMapping()

	albums := []RawRecord{
		{Name: "Adele", AlbumTitle: "21"},
		{Name: "   ", AlbumTitle: "Orphaned Album"}, // empty artist: skipped
		{Name: "Adele", AlbumTitle: ""},             // missing title: skipped
		{Name: "Adele", AlbumTitle: "25"},
	}

	c := Build(nil, albums, m)

	require.Len(t, c.Artists(), 1)
	assert.Equal(t, 2, c.Artists()[0].AlbumCount)
	assert.Equal(t, 2, c.Skipped())

	skips := c.Skips()
	require.Len(t, skips, 2)
	assert.ErrorIs(t, skips[0].Err, errors.ErrEmptyName)
	assert.Equal(t, 1, skips[0].Index)
	assert.ErrorIs(t, skips[1].Err, errors.ErrMalformedRecord)
	assert.Equal(t, 2, skips[1].Index)
}

func TestBuildAlbumRows(t *testing.T) {
	m := normalize.EmptyMapping()

	albums := []RawRecord{
		{Name: "Sigur Rós", AlbumTitle: "Ágætis byrjun (Remastered)", ReleaseDate: date("1999-06-12")},
		{Name: "Sigur Rós", AlbumTitle: "( )"},
	}

	c := Build(nil, albums, m)

	rows := c.Albums()
	require.Len(t, rows, 2)

	assert.Equal(t, "Ágætis byrjun", rows[0].Title)
	assert.Equal(t, "Ágætis byrjun (Remastered)", rows[0].OriginalTitle)
	assert.Equal(t, 1999, rows[0].ReleaseYear)
	assert.Equal(t, "Sigur Rós", rows[0].Artist)

	// Untouched title, zero date.
	assert.Equal(t, "( )", rows[1].Title)
	assert.Zero(t, rows[1].ReleaseYear)

	// Audit holds exactly the changed title.
	review := c.CleanupReview()
	require.Len(t, review, 1)
	assert.Equal(t, CleanupPair{Original: "Ágætis byrjun (Remastered)", Cleaned: "Ágætis byrjun"}, review[0])
}

func TestBuildKeepsDuplicateAlbums(t *testing.T) {
	m := normalize.EmptyMapping()

	// The same album twice stays two rows and counts twice; duplicates are a
	// data-quality signal, not something to silently drop.
	albums := []RawRecord{
		{Name: "Drake", AlbumTitle: "Views"},
		{Name: "Drake", AlbumTitle: "Views"},
	}

	c := Build(nil, albums, m)

	assert.Len(t, c.Albums(), 2)
	assert.Equal(t, 2, c.Artists()[0].AlbumCount)
}

func TestBuildAppliesMappingToArtists(t *testing.T) {
	m, err := normalize.NewMapping([]normalize.MappingPair{
		{Raw: "Beyoncé ", Canonical: "Beyonce"},
	})
	require.NoError(t, err)

	c := Build([]RawRecord{{Name: "Beyoncé "}}, nil, m)

	require.Len(t, c.Artists(), 1)
	assert.Equal(t, "Beyonce", c.Artists()[0].Name)
}

func TestBuildCountConsistency(t *testing.T) {
	m := normalize.EmptyMapping()

	albums := []RawRecord{
		{Name: "A", AlbumTitle: "One"},
		{Name: "B", AlbumTitle: "Two"},
		{Name: "", AlbumTitle: "Skipped"},
		{Name: "A", AlbumTitle: "Three"},
	}

	c := Build(nil, albums, m)

	total := 0
	for _, a := range c.Artists() {
		total += a.AlbumCount
	}
	assert.Equal(t, len(c.Albums()), total, "album counts must sum to kept album rows")
	assert.Equal(t, len(albums)-c.Skipped(), total)
}
