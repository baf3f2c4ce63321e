// Package parquetio encodes row slices to Parquet in memory. The cleansed
// datasets are small enough per unit that buffering the whole file before
// upload keeps the store interface simple.
package parquetio

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// Marshal encodes rows into a single Parquet file. The schema comes from
// the parquet struct tags on T. An empty slice still produces a valid file
// carrying the schema, so downstream table definitions stay readable.
func Marshal[T any](rows []T) ([]byte, error) {
	fw := buffer.NewBufferFile()

	pw, err := writer.NewParquetWriter(fw, new(T), 1)
	if err != nil {
		return nil, fmt.Errorf("parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i, row := range rows {
		if err := pw.Write(row); err != nil {
			return nil, fmt.Errorf("parquet write row %d: %w", i, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("parquet finalize: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("parquet close: %w", err)
	}
	return fw.Bytes(), nil
}
