// Package schema has the data model shared by every part of benchplot:
// benchmark identities, curves, plot configuration and plot descriptions.
package schema

import (
	"math"
	"strconv"
	"strings"
)

// Throughput is the amount of work one benchmark iteration processes.
type Throughput struct {
	Kind  ThroughputKind `json:"kind"`
	Count uint64         `json:"count"`
}

// BenchmarkID identifies one measured variant.
// FunctionID is the grouping key; ValueStr or Throughput carries the input parameter.
type BenchmarkID struct {
	GroupID    string      `json:"group"`                // Benchmark group name
	FunctionID *string     `json:"function,omitempty"`   // Function under test, nil when the group has one function
	ValueStr   *string     `json:"value,omitempty"`      // Input parameter as written by the caller
	Throughput *Throughput `json:"throughput,omitempty"` // Bytes or elements processed, overrides ValueStr for plotting
	Title      string      `json:"title,omitempty"`      // Explicit display title
}

// Function returns the function identity and whether it was set.
func (id BenchmarkID) Function() (string, bool) {
	if id.FunctionID == nil {
		return "", false
	}
	return *id.FunctionID, true
}

// AsNumber returns the numeric input parameter of the benchmark.
// Throughput counts win over ValueStr. A benchmark with neither, or with a
// ValueStr that is not a finite number, violates the plotting contract.
func (id BenchmarkID) AsNumber() (float64, error) {
	if id.Throughput != nil {
		return float64(id.Throughput.Count), nil
	}
	if id.ValueStr == nil {
		return 0, NewContractError("parameter", id.DisplayTitle(), "benchmark has no input parameter")
	}
	v, ok := parseParameter(*id.ValueStr)
	if !ok {
		return 0, NewContractError("parameter", id.DisplayTitle(), "parameter %q is not numeric", *id.ValueStr)
	}
	return v, nil
}

// parseParameter accepts finite numbers only. ParseFloat also takes "NaN"
// and "Inf", which have no place on a parameter axis.
func parseParameter(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ValueType reports what the input parameter measures.
// The second return value is false when the parameter is not numeric.
func (id BenchmarkID) ValueType() (ValueType, bool) {
	if id.Throughput != nil {
		switch id.Throughput.Kind {
		case BytesThroughput:
			return BytesValue, true
		case ElementsThroughput:
			return ElementsValue, true
		}
	}
	if id.ValueStr != nil {
		if _, ok := parseParameter(*id.ValueStr); ok {
			return PlainValue, true
		}
	}
	return "", false
}

// DisplayTitle returns the explicit title, or group/function/value joined by slashes.
func (id BenchmarkID) DisplayTitle() string {
	if id.Title != "" {
		return id.Title
	}
	parts := make([]string, 0, 3)
	if id.GroupID != "" {
		parts = append(parts, id.GroupID)
	}
	if id.FunctionID != nil {
		parts = append(parts, *id.FunctionID)
	}
	if id.ValueStr != nil {
		parts = append(parts, *id.ValueStr)
	}
	return strings.Join(parts, "/")
}

// Curve pairs one benchmark with its raw measurements.
type Curve struct {
	ID     BenchmarkID `json:"id"`
	Sample []float64   `json:"sample"`
}

// StringPtr is a small helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}
