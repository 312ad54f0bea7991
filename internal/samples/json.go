package samples

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/benchplot/schema"
)

// ReadJSON decodes an array of {"id": {...}, "sample": [...]} objects.
func ReadJSON(r io.Reader) ([]schema.Curve, error) {
	var curves []schema.Curve
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&curves); err != nil {
		return nil, fmt.Errorf("failed to decode curves: %w", err)
	}
	return curves, nil
}

// ReadJSONFile reads curves from a JSON file.
func ReadJSONFile(path string) ([]schema.Curve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return ReadJSON(file)
}

// WriteJSON encodes curves as indented JSON.
func WriteJSON(w io.Writer, curves []schema.Curve) error {
	if curves == nil {
		curves = []schema.Curve{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(curves)
}

// WriteJSONFile writes curves to a JSON file.
func WriteJSONFile(path string, curves []schema.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteJSON(file, curves)
}
