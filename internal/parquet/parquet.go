// Package parquet reads and writes benchmark samples as Parquet files using
// github.com/parquet-go/parquet-go. Each row holds one measurement.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/benchplot/schema"
	"github.com/parquet-go/parquet-go"
)

// WriteSamplesParquet writes curves to a Parquet file, one row per measurement.
func WriteSamplesParquet(curves []schema.Curve, outputPath string) error {
	rows, err := schema.RowsFromCurves(curves)
	if err != nil {
		return err
	}

	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SampleRow struct tags
	writer := parquet.NewGenericWriter[schema.SampleRow](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ReadSamplesParquet reads curves back from a Parquet file written by
// WriteSamplesParquet.
func ReadSamplesParquet(inputPath string) ([]schema.Curve, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows, err := ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	return schema.CurvesFromRows(rows)
}

// ReadRows reads every sample row from r.
func ReadRows(r io.ReaderAt) ([]schema.SampleRow, error) {
	reader := parquet.NewGenericReader[schema.SampleRow](r)
	defer func() { _ = reader.Close() }()

	rows := make([]schema.SampleRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return rows[:n], nil
}
