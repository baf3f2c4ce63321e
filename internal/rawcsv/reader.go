// Package rawcsv reads delimited bronze extracts into untyped rows.
//
// Raw values stay strings end to end; typing happens inside each silver
// unit's normalization step, never here.
package rawcsv

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// Row is an untyped record from a raw extract: column name → raw text.
// A missing or empty field is the empty string.
type Row map[string]string

// ReadAll parses a full extract into its header and data rows.
//
// Parsing is best-effort in the way probing is:
//   - header names are trimmed of surrounding whitespace
//   - records whose field count differs from the header are skipped
//   - an empty file yields a nil header and no rows, not an error
func ReadAll(data []byte) ([]string, []Row, error) {
	header, recs, err := read(data, -1)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		row := make(Row, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ReadSample parses the header and at most maxRows data rows. Rows beyond
// the cap are never inspected. Used by schema discovery.
func ReadSample(data []byte, maxRows int) ([]string, [][]string, error) {
	return read(data, maxRows)
}

func read(data []byte, maxRows int) ([]string, [][]string, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, nil, err
	}
	decoded = bytes.TrimSpace(decoded)
	if len(decoded) == 0 {
		return nil, nil, nil
	}

	r := csv.NewReader(bytes.NewReader(decoded))
	r.FieldsPerRecord = -1 // validated manually
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for maxRows < 0 || len(rows) < maxRows {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return header, rows, err
		}
		if len(rec) != len(header) {
			continue
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}
