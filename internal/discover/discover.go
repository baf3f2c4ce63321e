// Package discover infers a column-name/type schema for a raw extract from a
// bounded row sample, so bronze files can be registered in the catalog
// without a predefined schema.
package discover

import (
	"github.com/thetascott/AWS-Data-Warehouse/internal/infer"
	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// DefaultMaxSamples bounds how many data rows are inspected per file.
const DefaultMaxSamples = 50

// ColumnSchema describes one column of a raw extract. Produced once per
// file and handed to catalog registration; never mutated afterward.
type ColumnSchema struct {
	Name string
	Type infer.Type
}

// Columns samples at most maxSamples data rows of a delimited extract and
// returns the inferred schema in header order.
//
// Each column's type is the classification of its first non-blank sample
// value; a column with only blank samples is string. The inferred type is a
// projection from a prefix sample and may be wrong for columns whose early
// values are atypical; that is the accepted trade for bounded reads.
//
// A file with no header (or no content) yields zero columns, not an error;
// the caller decides whether to skip it. Duplicate post-trim column names
// are passed through untouched.
func Columns(data []byte, maxSamples int) ([]ColumnSchema, error) {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	header, rows, err := rawcsv.ReadSample(data, maxSamples)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, nil
	}

	cols := make([]ColumnSchema, 0, len(header))
	for i, name := range header {
		samples := make([]string, 0, len(rows))
		for _, r := range rows {
			if i < len(r) {
				samples = append(samples, r[i])
			}
		}
		cols = append(cols, ColumnSchema{
			Name: name,
			Type: infer.FirstNonBlank(samples),
		})
	}
	return cols, nil
}
