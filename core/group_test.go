package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCurves(t *testing.T) {
	input := []schema.Curve{
		curve("A", "1", 1), curve("A", "2", 2),
		curve("B", "1", 1), curve("B", "2", 2),
		curve("A", "3", 3),
	}

	tests := []struct {
		name    string
		mode    schema.GroupingMode
		want    []string
		sizes   []int
		wantErr bool
	}{
		{name: "runs split a reappearing function", mode: schema.RunsGrouping, want: []string{"A", "B", "A"}, sizes: []int{2, 2, 1}},
		{name: "empty mode means runs", mode: "", want: []string{"A", "B", "A"}, sizes: []int{2, 2, 1}},
		{name: "partition merges", mode: schema.PartitionGrouping, want: []string{"A", "B"}, sizes: []int{3, 2}},
		{name: "strict rejects", mode: schema.StrictGrouping, wantErr: true},
		{name: "unknown mode", mode: "sorted", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := GroupCurves(input, tt.mode, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, schema.ErrCallerContract)
				return
			}
			require.NoError(t, err)
			require.Len(t, groups, len(tt.want))
			for i, g := range groups {
				name, ok := g.Name()
				assert.True(t, ok)
				assert.Equal(t, tt.want[i], name)
				assert.Len(t, g.Curves, tt.sizes[i])
			}
		})
	}
}

func TestGroupCurvesLogsSplitGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := GroupCurves([]schema.Curve{curve("A", "1", 1), curve("B", "1", 1), curve("A", "2", 1)}, schema.RunsGrouping, logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "function=A")
}

func TestGroupCurvesMissingFunction(t *testing.T) {
	groups, err := GroupCurves([]schema.Curve{curve("", "1", 1), curve("", "2", 1), curve("A", "1", 1)}, schema.RunsGrouping, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	_, ok := groups[0].Name()
	assert.False(t, ok)
	assert.Len(t, groups[0].Curves, 2)
}

func TestSortedPoints(t *testing.T) {
	g := Group{Curves: []schema.Curve{
		curve("A", "64", 6, 8),
		curve("A", "8", 1),
		curve("A", "1024", 10),
		curve("A", "16", 2, 4),
	}}

	points, err := g.SortedPoints()
	require.NoError(t, err)
	require.Len(t, points, 4)
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i-1].X, points[i].X)
	}
	assert.Equal(t, Point{X: 16, Mean: 3}, points[1])
}

func TestPointsNonNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"text", "small"},
		{"not a number", "NaN"},
		{"infinity", "Inf"},
		{"negative infinity", "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Group{Curves: []schema.Curve{curve("A", "5", 1), curve("A", tt.value, 1), curve("A", "1", 1)}}

			_, err := g.SortedPoints()
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrCallerContract)
		})
	}
}
