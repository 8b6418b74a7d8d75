package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodex/melodex/pkg/reconcile"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullWorkspace(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		ArtistsFile: writeFile(t, dir, "artists.csv",
			"name\nBeyoncé \nThe National\n"),
		AlbumsFile: writeFile(t, dir, "albums.csv",
			"title,artist,releasedDate\n"+
				"Lemonade,Beyoncé ,2016-04-23\n"+
				"21 (Deluxe Edition),Adele,2011-01-24\n"+
				"25,Adele,2015-11-20\n"+
				"Orphan,,2020-01-01\n"),
		MappingFile: writeFile(t, dir, "mapping.csv",
			"Original Name:Cleaned Name\nBeyoncé :Beyonce\n"),
		ExcludeFile: writeFile(t, dir, "exclude.txt",
			"The National\n"),
		ExternalFile: writeFile(t, dir, "seated.txt",
			"Adele\nBon Iver\n"),
	}

	ws, err := Load(context.Background(), cfg)
	require.NoError(t, err)

	// Mapping override applied, artists merged across both sources.
	artists := reconcile.AllArtists(ws.Catalog)
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"Adele", "Beyonce", "The National"}, names)

	// Empty-artist album row skipped, not fatal.
	assert.Equal(t, 1, ws.Catalog.Skipped())

	// Title cleanup recorded in the audit.
	review := ws.Catalog.CleanupReview()
	require.Len(t, review, 1)
	assert.Equal(t, "21 (Deluxe Edition)", review[0].Original)
	assert.Equal(t, "21", review[0].Cleaned)

	assert.True(t, ws.Excludes.Contains("the national"))
	require.True(t, ws.HasExternal())
	assert.Equal(t, 2, ws.External.Len())

	// The reconciliation over this workspace: Adele is on Seated, The
	// National is excluded, so only Beyonce is missing.
	missing := reconcile.MissingFromExternal(ws.Catalog, ws.External, ws.Excludes)
	require.Len(t, missing, 1)
	assert.Equal(t, "Beyonce", missing[0].Name)
}

func TestLoadEmptyConfig(t *testing.T) {
	ws, err := Load(context.Background(), Config{})
	require.NoError(t, err)

	assert.Empty(t, ws.Catalog.Artists())
	assert.Equal(t, 0, ws.Excludes.Len())
	assert.False(t, ws.HasExternal())
}

func TestLoadBadMappingIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		MappingFile: writeFile(t, dir, "mapping.csv", "wrong:header\nA:B\n"),
	}

	_, err := Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoadMissingAlbumsFileIsFatal(t *testing.T) {
	cfg := Config{AlbumsFile: filepath.Join(t.TempDir(), "missing.csv")}

	_, err := Load(context.Background(), cfg)
	assert.Error(t, err)
}
