package schema

import "time"

// SampleRow is the flat, one-measurement-per-row encoding of a curve used by
// the CSV, parquet and sqlite formats. Rows sharing a Curve ordinal belong to
// the same curve.
type SampleRow struct {
	Curve           int64   `parquet:"curve,snappy"`
	Group           string  `parquet:"group,snappy"`
	Function        *string `parquet:"function,optional,snappy"`
	Value           *string `parquet:"value,optional,snappy"`
	ThroughputKind  *string `parquet:"throughput_kind,optional,snappy"`
	ThroughputCount *int64  `parquet:"throughput_count,optional,snappy"`
	Title           *string `parquet:"title,optional,snappy"`
	Measurement     float64 `parquet:"measurement,snappy"`
}

// RowsFromCurves flattens curves into rows, numbering curves from zero.
// A curve without measurements has no row to carry its identity, so it is
// rejected instead of being dropped.
func RowsFromCurves(curves []Curve) ([]SampleRow, error) {
	var rows []SampleRow
	for i, c := range curves {
		if len(c.Sample) == 0 {
			return nil, NewContractError("rows", c.ID.DisplayTitle(), "curve %d has an empty sample", i)
		}
		base := SampleRow{
			Curve:    int64(i),
			Group:    c.ID.GroupID,
			Function: c.ID.FunctionID,
			Value:    c.ID.ValueStr,
		}
		if c.ID.Throughput != nil {
			kind := string(c.ID.Throughput.Kind)
			count := int64(c.ID.Throughput.Count)
			base.ThroughputKind = &kind
			base.ThroughputCount = &count
		}
		if c.ID.Title != "" {
			base.Title = StringPtr(c.ID.Title)
		}
		for _, m := range c.Sample {
			row := base
			row.Measurement = m
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// CurvesFromRows folds rows back into curves in first-appearance order of
// their Curve ordinal. The identity is taken from the first row of a curve.
func CurvesFromRows(rows []SampleRow) ([]Curve, error) {
	var curves []Curve
	index := make(map[int64]int)
	for _, r := range rows {
		if i, ok := index[r.Curve]; ok {
			curves[i].Sample = append(curves[i].Sample, r.Measurement)
			continue
		}
		id, err := r.benchmarkID()
		if err != nil {
			return nil, err
		}
		index[r.Curve] = len(curves)
		curves = append(curves, Curve{ID: id, Sample: []float64{r.Measurement}})
	}
	return curves, nil
}

func (r SampleRow) benchmarkID() (BenchmarkID, error) {
	id := BenchmarkID{
		GroupID:    r.Group,
		FunctionID: r.Function,
		ValueStr:   r.Value,
	}
	if r.Title != nil {
		id.Title = *r.Title
	}
	if r.ThroughputKind != nil || r.ThroughputCount != nil {
		if r.ThroughputKind == nil || r.ThroughputCount == nil {
			return id, NewContractError("rows", id.DisplayTitle(), "throughput needs both kind and count")
		}
		kind := ThroughputKind(*r.ThroughputKind)
		if kind != BytesThroughput && kind != ElementsThroughput {
			return id, NewContractError("rows", id.DisplayTitle(), "unknown throughput kind %q", kind)
		}
		if *r.ThroughputCount < 0 {
			return id, NewContractError("rows", id.DisplayTitle(), "negative throughput count %d", *r.ThroughputCount)
		}
		id.Throughput = &Throughput{Kind: kind, Count: uint64(*r.ThroughputCount)}
	}
	return id, nil
}

// ImportRun describes one batch of curves stored in the sample database.
type ImportRun struct {
	ID         int64     `json:"id"`
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"imported_at"`
	Curves     int       `json:"curves"`
	Rows       int       `json:"rows"`
}
