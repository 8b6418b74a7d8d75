package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melodex/melodex/pkg/library"
)

func TestArtistsToTableData(t *testing.T) {
	data := ArtistsToTableData([]library.Artist{
		{Name: "Adele", AlbumCount: 3},
		{Name: "Sigur Rós", AlbumCount: 1},
	})

	assert.Equal(t, []string{"Artist", "Album Count"}, data.Headers)
	assert.Equal(t, [][]string{{"Adele", "3"}, {"Sigur Rós", "1"}}, data.Rows)
	assert.Equal(t, []Align{AlignLeft, AlignRight}, data.ColumnAlignment)
}

func TestAlbumsToTableData(t *testing.T) {
	data := AlbumsToTableData([]library.Album{
		{Title: "25", Artist: "Adele", ReleaseYear: 2015},
		{Title: "Untitled", Artist: "Unknown"},
	})

	assert.Equal(t, []string{"Album Title", "Artist", "Release Year"}, data.Headers)
	assert.Equal(t, [][]string{{"25", "Adele", "2015"}, {"Untitled", "Unknown", ""}}, data.Rows)
}

func TestNamesToTableData(t *testing.T) {
	data := NamesToTableData("Missing Artist", []string{"Beyonce", "Hozier"})

	assert.Equal(t, []string{"Missing Artist"}, data.Headers)
	assert.Equal(t, [][]string{{"Beyonce"}, {"Hozier"}}, data.Rows)
	assert.Nil(t, data.ColumnAlignment)
}

func TestNamesToTableDataEmpty(t *testing.T) {
	data := NamesToTableData("Missing Artist", nil)
	assert.Empty(t, data.Rows)
}

func TestReviewToTableData(t *testing.T) {
	data := ReviewToTableData([]library.CleanupPair{
		{Original: "21 (Deluxe Edition)", Cleaned: "21"},
	})

	assert.Equal(t, []string{"Original Album Title", "Album Title"}, data.Headers)
	assert.Equal(t, [][]string{{"21 (Deluxe Edition)", "21"}}, data.Rows)
}
