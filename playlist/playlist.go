// Package playlist - parsing and serialization of playlist files.
package playlist

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/mix"
)

// Sentinel errors for playlist ingest.
var (
	// ErrNoHeader indicates an input without a header row.
	ErrNoHeader = errors.New("playlist: missing header row")

	// ErrNoKeyColumn indicates a header without a recognizable key column.
	ErrNoKeyColumn = errors.New("playlist: no key column found")

	// ErrNoBPMColumn indicates a header without a recognizable BPM column.
	ErrNoBPMColumn = errors.New("playlist: no BPM column found")
)

// Column aliases accepted in headers, compared case-insensitively.
var (
	keyColumns = []string{"key", "camelot", "camelot key", "tonality"}
	bpmColumns = []string{"bpm", "tempo"}
	idColumns  = []string{"id", "track id", "trackid"}
)

// Warning reports one rejected row: its key or tempo metadata could not
// be mapped, so the row is excluded and the run continues without it.
type Warning struct {
	// Row is the 1-based data row number in the source file.
	Row int

	// Field names the offending column ("key" or "bpm").
	Field string

	// Value is the raw cell content that failed to parse.
	Value string

	// Title is the row's title cell when present, for human reports.
	Title string

	// Suggestion is a near-miss key hint ("did you mean 8A"), or empty.
	Suggestion string
}

// Playlist is one parsed playlist file.
type Playlist struct {
	// Columns is the source header, in file order.
	Columns []string

	// Tracks are the rows that parsed cleanly, in file order.
	Tracks []mix.Track

	// Warnings lists the rejected rows.
	Warnings []Warning
}

// Read parses a playlist export. Encoding (UTF-8 or BOM-marked UTF-16)
// and delimiter (tab or comma) are sniffed from the content.
//
// Rows whose key is not a Camelot code, or whose BPM is not numeric, are
// collected as Warnings and excluded; they are never silently dropped.
//
// Complexity: O(bytes) single pass.
func Read(r io.Reader) (*Playlist, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw, err = decodeToUTF8(raw)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoHeader
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = sniffDelimiter(raw)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := rows[0]
	keyIdx := findColumn(header, keyColumns)
	if keyIdx < 0 {
		return nil, ErrNoKeyColumn
	}
	bpmIdx := findColumn(header, bpmColumns)
	if bpmIdx < 0 {
		return nil, ErrNoBPMColumn
	}
	var (
		idIdx    = findColumn(header, idColumns)
		titleIdx = findColumn(header, []string{"track title", "title", "name"})
	)

	pl := &Playlist{Columns: header}
	for rowNum, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}

		meta := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				meta[col] = row[i]
			}
		}

		title := cell(row, titleIdx)

		rawKey := cell(row, keyIdx)
		key, kerr := camelot.Parse(rawKey)
		if kerr != nil {
			w := Warning{Row: rowNum + 1, Field: "key", Value: rawKey, Title: title}
			if hint, ok := camelot.Suggest(rawKey); ok {
				w.Suggestion = hint.String()
			}
			pl.Warnings = append(pl.Warnings, w)
			continue
		}

		rawBPM := strings.TrimSpace(cell(row, bpmIdx))
		bpm, berr := strconv.ParseFloat(rawBPM, 64)
		if berr != nil || bpm <= 0 {
			pl.Warnings = append(pl.Warnings, Warning{
				Row: rowNum + 1, Field: "bpm", Value: rawBPM, Title: title,
			})
			continue
		}

		id := cell(row, idIdx)
		if id == "" {
			// Exports rarely carry stable identifiers; mint one per row.
			id = uuid.NewString()
		}

		pl.Tracks = append(pl.Tracks, mix.Track{ID: id, Key: key, BPM: bpm, Meta: meta})
	}

	return pl, nil
}

// ReadFile is Read over a file path.
func ReadFile(path string) (*Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Write serializes tracks as comma-separated UTF-8 using the given
// column order. Cell values come from each track's Meta payload, so the
// output mirrors the source columns in the new order.
func Write(w io.Writer, columns []string, tracks []mix.Track) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, tr := range tracks {
		for i, col := range columns {
			row[i] = tr.Meta[col]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile is Write over a file path.
func WriteFile(path string, columns []string, tracks []mix.Track) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, columns, tracks); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// decodeToUTF8 converts BOM-marked UTF-16 input (the Rekordbox TXT
// default) to UTF-8; everything else passes through untouched.
func decodeToUTF8(raw []byte) ([]byte, error) {
	if len(raw) < 2 {
		return raw, nil
	}
	le := raw[0] == 0xFF && raw[1] == 0xFE
	be := raw[0] == 0xFE && raw[1] == 0xFF
	if !le && !be {
		return raw, nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()

	return dec.Bytes(raw)
}

// sniffDelimiter picks tab when the first line contains one, else comma.
func sniffDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	if bytes.IndexByte(line, '\t') >= 0 {
		return '\t'
	}

	return ','
}

// findColumn returns the index of the first header cell matching any
// alias (case-insensitive, trimmed), or -1.
func findColumn(header []string, aliases []string) int {
	for i, col := range header {
		c := strings.ToLower(strings.TrimSpace(col))
		for _, a := range aliases {
			if c == a {
				return i
			}
		}
	}

	return -1
}

// cell safely fetches a trimmed cell; out-of-range or negative yields "".
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// emptyRow reports whether every cell is blank.
func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
