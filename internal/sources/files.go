// Package sources loads the catalog's input files: the library exports, the
// curated mapping and exclude files, and the cached external platform list.
//
// The loaders only parse; all name cleanup happens in the catalog builder.
// Small curated files (mapping, exclude) load all-or-nothing, since a partial
// load would mask data-quality bugs. The large library exports are lenient
// per-row; the builder counts what it skips.
package sources

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/library"
	"github.com/melodex/melodex/pkg/normalize"
)

// filePermissions is the mode for files this package writes.
const filePermissions = 0o644

// dateLayouts are tried in order when parsing release dates. Unparseable
// dates leave the record dated zero; the row itself is kept.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
}

// LoadMappingFile reads the artist cleanup mapping: a colon-separated file
// with an "Original Name:Cleaned Name" header. Any malformed line is fatal.
func LoadMappingFile(path string) ([]normalize.MappingPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ':'
	r.FieldsPerRecord = 2

	header, err := r.Read()
	if err != nil {
		return nil, errors.NewParseError("csv", path, "missing header", err)
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "Original Name") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "Cleaned Name") {
		return nil, errors.NewParseError("csv", path,
			fmt.Sprintf("unexpected header %q, want \"Original Name:Cleaned Name\"", strings.Join(header, ":")), nil)
	}

	var pairs []normalize.MappingPair
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		pairs = append(pairs, normalize.MappingPair{Raw: record[0], Canonical: record[1]})
	}
	return pairs, nil
}

// LoadArtistsFile reads the artist export: a CSV with a "name" column.
func LoadArtistsFile(path string) ([]library.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errors.NewParseError("csv", path, "missing header", err)
	}
	nameCol := columnIndex(header, "name")
	if nameCol < 0 {
		return nil, errors.NewParseError("csv", path, `missing "name" column`, nil)
	}

	var records []library.RawRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		records = append(records, library.RawRecord{Name: field(record, nameCol)})
	}
	return records, nil
}

// LoadAlbumsFile reads the album export: a CSV with "title", "artist", and an
// optional "releasedDate" column. Rows with missing fields are returned as-is;
// the builder skips and counts them.
func LoadAlbumsFile(path string) ([]library.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errors.NewParseError("csv", path, "missing header", err)
	}
	titleCol := columnIndex(header, "title")
	artistCol := columnIndex(header, "artist")
	dateCol := columnIndex(header, "releasedDate")
	if titleCol < 0 || artistCol < 0 {
		return nil, errors.NewParseError("csv", path, `missing "title" or "artist" column`, nil)
	}

	var records []library.RawRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		rec := library.RawRecord{
			Name:       field(record, artistCol),
			AlbumTitle: field(record, titleCol),
		}
		if dateCol >= 0 {
			rec.ReleaseDate = parseDate(field(record, dateCol))
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadExcludeFile reads the exclude list: one artist name per line. The file
// is rewritten sorted and deduplicated, keeping the curated list tidy on disk.
func LoadExcludeFile(path string) ([]string, error) {
	names, err := readLines(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names))
	deduped := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		deduped = append(deduped, name)
	}
	sort.Strings(deduped)

	if err := WriteNames(path, deduped); err != nil {
		return nil, err
	}
	return deduped, nil
}

// LoadExternalFile reads the cached external platform list: one artist name
// per line.
func LoadExternalFile(path string) ([]string, error) {
	return readLines(path)
}

// WriteNames writes one name per line to path.
func WriteNames(path string, names []string) error {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// readLines reads trimmed, non-empty lines from path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return lines, nil
}

// columnIndex finds a header column by case-insensitive name.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// field returns the i-th field of a record, tolerating short rows.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseDate parses a release date leniently; unparseable input is zero time.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
