package sources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodex/melodex/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMappingFile(t *testing.T) {
	path := writeFile(t, "mapping.csv",
		"Original Name:Cleaned Name\n"+
			"Beyoncé :Beyonce\n"+
			"Sigur Ros:Sigur Rós\n")

	pairs, err := LoadMappingFile(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Beyoncé ", pairs[0].Raw)
	assert.Equal(t, "Beyonce", pairs[0].Canonical)
}

func TestLoadMappingFileRejectsBadHeader(t *testing.T) {
	path := writeFile(t, "mapping.csv", "raw:canonical\nA:B\n")

	_, err := LoadMappingFile(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadMappingFileRejectsMalformedLine(t *testing.T) {
	// A three-field line is fatal; curated files load all-or-nothing.
	path := writeFile(t, "mapping.csv",
		"Original Name:Cleaned Name\nA:B:C\n")

	_, err := LoadMappingFile(path)
	assert.Error(t, err)
}

func TestLoadArtistsFile(t *testing.T) {
	path := writeFile(t, "artists.csv",
		"id,name,followers\n"+
			"1,Adele,100\n"+
			"2,Drake,200\n")

	records, err := LoadArtistsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Adele", records[0].Name)
	assert.Equal(t, "Drake", records[1].Name)
}

func TestLoadArtistsFileMissingNameColumn(t *testing.T) {
	path := writeFile(t, "artists.csv", "id,artist\n1,Adele\n")

	_, err := LoadArtistsFile(path)
	assert.Error(t, err)
}

func TestLoadAlbumsFile(t *testing.T) {
	path := writeFile(t, "albums.csv",
		"title,artist,releasedDate\n"+
			"21,Adele,2011-01-24\n"+
			"Views,Drake,not-a-date\n"+
			",MissingTitle,2020-01-01\n")

	records, err := LoadAlbumsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "21", records[0].AlbumTitle)
	assert.Equal(t, "Adele", records[0].Name)
	assert.Equal(t, time.Date(2011, 1, 24, 0, 0, 0, 0, time.UTC), records[0].ReleaseDate)

	// Bad date keeps the row, zero date.
	assert.True(t, records[1].ReleaseDate.IsZero())

	// Missing title row is passed through for the builder to count.
	assert.Empty(t, records[2].AlbumTitle)
}

func TestLoadExcludeFileSortsAndRewrites(t *testing.T) {
	path := writeFile(t, "exclude.txt", "Zed\n\nAdele\nZed\n  Drake  \n")

	names, err := LoadExcludeFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adele", "Drake", "Zed"}, names)

	// The file on disk is rewritten sorted and deduplicated.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Adele\nDrake\nZed\n", string(content))
}

func TestLoadExternalFile(t *testing.T) {
	path := writeFile(t, "seated.txt", "The National\n\nBon Iver\n")

	names, err := LoadExternalFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"The National", "Bon Iver"}, names)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadExternalFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestWriteNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteNames(path, []string{"A", "B"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", string(content))
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		year int
	}{
		{"2011-01-24", 2011},
		{"2011-01-24T10:00:00Z", 2011},
		{"2011/01/24", 2011},
		{"Jan 24, 2011", 2011},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		got := parseDate(tt.in)
		if tt.year == 0 {
			assert.True(t, got.IsZero(), "parseDate(%q)", tt.in)
		} else {
			assert.Equal(t, tt.year, got.Year(), "parseDate(%q)", tt.in)
		}
	}
}
