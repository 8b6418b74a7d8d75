// Package workspace assembles one run's in-memory snapshot: the cleaned
// catalog, the mapping table, the exclude set, and the external platform list.
//
// A workspace is built fresh from the configured source files at the start of
// a run and never mutated afterwards, which keeps every reconciliation query
// pure and cheap to rerun.
package workspace

import (
	"context"

	"github.com/melodex/melodex/internal/sources"
	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/library"
	"github.com/melodex/melodex/pkg/logging"
	"github.com/melodex/melodex/pkg/normalize"
	"github.com/melodex/melodex/pkg/reconcile"
)

// Config names the source files for a run. Empty paths mean the corresponding
// input is absent: an empty mapping, an empty exclude set, or no external list.
type Config struct {
	ArtistsFile  string
	AlbumsFile   string
	MappingFile  string
	ExcludeFile  string
	ExternalFile string
}

// Workspace is the loaded snapshot for one run.
type Workspace struct {
	Catalog  *library.Catalog
	Mapping  *normalize.Mapping
	Excludes *reconcile.ExcludeSet

	// External is nil when no external list was configured; commands that
	// need it must check HasExternal.
	External *reconcile.ExternalList
}

// HasExternal reports whether an external platform list was loaded.
func (w *Workspace) HasExternal() bool {
	return w.External != nil
}

// Load reads all configured sources and builds the catalog. Mapping and
// exclude files are small curated inputs and fail the whole load on any
// malformed content; library export rows are skipped and counted instead.
func Load(ctx context.Context, cfg Config) (*Workspace, error) {
	log := logging.FromContext(ctx)

	mapping := normalize.EmptyMapping()
	if cfg.MappingFile != "" {
		pairs, err := sources.LoadMappingFile(cfg.MappingFile)
		if err != nil {
			return nil, err
		}
		mapping, err = normalize.NewMapping(pairs)
		if err != nil {
			return nil, errors.WrapParse("csv", cfg.MappingFile, err)
		}
		log.Debug().Str("file", cfg.MappingFile).Int("overrides", mapping.Len()).Msg("Loaded artist mapping")
	}

	var artistRecords []library.RawRecord
	if cfg.ArtistsFile != "" {
		var err error
		artistRecords, err = sources.LoadArtistsFile(cfg.ArtistsFile)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", cfg.ArtistsFile).Int("records", len(artistRecords)).Msg("Loaded artists")
	}

	var albumRecords []library.RawRecord
	if cfg.AlbumsFile != "" {
		var err error
		albumRecords, err = sources.LoadAlbumsFile(cfg.AlbumsFile)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", cfg.AlbumsFile).Int("records", len(albumRecords)).Msg("Loaded albums")
	}

	catalog := library.Build(artistRecords, albumRecords, mapping)
	if skipped := catalog.Skipped(); skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("Skipped malformed records during catalog build")
		for _, skip := range catalog.Skips() {
			log.Debug().Str("source", skip.Source).Int("index", skip.Index).Err(skip.Err).Msg("Skipped record")
		}
	}

	excludes := reconcile.NewExcludeSet(nil)
	if cfg.ExcludeFile != "" {
		names, err := sources.LoadExcludeFile(cfg.ExcludeFile)
		if err != nil {
			return nil, err
		}
		excludes = reconcile.NewExcludeSet(names)
		log.Debug().Str("file", cfg.ExcludeFile).Int("artists", excludes.Len()).Msg("Loaded exclude list")
	}

	var external *reconcile.ExternalList
	if cfg.ExternalFile != "" {
		names, err := sources.LoadExternalFile(cfg.ExternalFile)
		if err != nil {
			return nil, err
		}
		external = reconcile.NewExternalList(names)
		log.Debug().Str("file", cfg.ExternalFile).Int("artists", external.Len()).Msg("Loaded external artist list")
	}

	return &Workspace{
		Catalog:  catalog,
		Mapping:  mapping,
		Excludes: excludes,
		External: external,
	}, nil
}
