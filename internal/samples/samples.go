// Package samples loads and saves benchmark curves in the supported input
// formats: JSON, CSV, Parquet and the SQLite sample store.
package samples

import (
	"context"
	"fmt"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/iocache"
	"github.com/huangsam/benchplot/internal/parquet"
	"github.com/huangsam/benchplot/schema"
)

// Load reads curves from path. An auto format is detected from the extension.
// SQLite inputs load the latest stored run.
func Load(ctx context.Context, path string, format schema.InputFormat) ([]schema.Curve, error) {
	if format == "" || format == schema.AutoFormat {
		detected, err := contract.DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	var curves []schema.Curve
	var err error
	switch format {
	case schema.JSONFormat:
		curves, err = ReadJSONFile(path)
	case schema.CSVFormat:
		curves, err = ReadCSVFile(path)
	case schema.ParquetFormat:
		curves, err = parquet.ReadSamplesParquet(path)
	case schema.SQLiteFormat:
		curves, err = loadStore(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s input %s: %w", format, path, err)
	}
	return curves, nil
}

// Save writes curves to path in the format picked from its extension.
// SQLite outputs append a new run to the store.
func Save(ctx context.Context, path string, curves []schema.Curve) error {
	format, err := contract.DetectFormat(path)
	if err != nil {
		return err
	}
	switch format {
	case schema.JSONFormat:
		return WriteJSONFile(path, curves)
	case schema.CSVFormat:
		return WriteCSVFile(path, curves)
	case schema.ParquetFormat:
		return parquet.WriteSamplesParquet(curves, path)
	default:
		store, err := iocache.OpenSampleStore(path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		_, err = store.Import(ctx, path, curves)
		return err
	}
}

func loadStore(ctx context.Context, path string) ([]schema.Curve, error) {
	store, err := iocache.OpenSampleStore(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()
	return store.Load(ctx, 0)
}
