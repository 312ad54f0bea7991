package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/benchplot/schema"
)

// csvHeader is the column order written by WriteCSV.
var csvHeader = []string{"curve", "group", "function", "value", "throughput_kind", "throughput_count", "title", "measurement"}

// ReadCSV reads one measurement per row. Columns are matched by header name
// and only measurement is required. Without a curve column, consecutive
// rows with the same identity form one curve. Empty cells are unset fields.
func ReadCSV(r io.Reader) ([]schema.Curve, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["measurement"]; !ok {
		return nil, errors.New("CSV header has no measurement column")
	}
	_, hasCurve := cols["curve"]

	cell := func(record []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return "", false
		}
		v := strings.TrimSpace(record[i])
		return v, v != ""
	}
	optional := func(record []string, name string) *string {
		if v, ok := cell(record, name); ok {
			return &v
		}
		return nil
	}

	var rows []schema.SampleRow
	var prevKey string
	ordinal := int64(-1)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		m, _ := cell(record, "measurement")
		measurement, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid measurement %q", line, m)
		}
		group, _ := cell(record, "group")
		row := schema.SampleRow{
			Group:          group,
			Function:       optional(record, "function"),
			Value:          optional(record, "value"),
			ThroughputKind: optional(record, "throughput_kind"),
			Title:          optional(record, "title"),
			Measurement:    measurement,
		}
		if c, ok := cell(record, "throughput_count"); ok {
			count, err := strconv.ParseInt(c, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid throughput count %q", line, c)
			}
			row.ThroughputCount = &count
		}

		if hasCurve {
			c, _ := cell(record, "curve")
			row.Curve, err = strconv.ParseInt(c, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid curve ordinal %q", line, c)
			}
		} else {
			key := identityKey(record, cols["measurement"])
			if key != prevKey || ordinal < 0 {
				ordinal++
				prevKey = key
			}
			row.Curve = ordinal
		}
		rows = append(rows, row)
	}
	return schema.CurvesFromRows(rows)
}

// identityKey joins every cell except the measurement.
func identityKey(record []string, measurement int) string {
	parts := make([]string, 0, len(record))
	for i, v := range record {
		if i != measurement {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, "\x00")
}

// ReadCSVFile reads curves from a CSV file.
func ReadCSVFile(path string) ([]schema.Curve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// WriteCSV writes curves one measurement per row.
func WriteCSV(w io.Writer, curves []schema.Curve) error {
	rows, err := schema.RowsFromCurves(curves)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		count := ""
		if r.ThroughputCount != nil {
			count = strconv.FormatInt(*r.ThroughputCount, 10)
		}
		record := []string{
			strconv.FormatInt(r.Curve, 10),
			r.Group,
			deref(r.Function),
			deref(r.Value),
			deref(r.ThroughputKind),
			count,
			deref(r.Title),
			strconv.FormatFloat(r.Measurement, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes curves to a CSV file.
func WriteCSVFile(path string, curves []schema.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteCSV(file, curves)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
