package render

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescription(output string) schema.PlotDescription {
	return schema.PlotDescription{
		Title:  "sort: Comparison",
		Font:   schema.DefaultFont,
		Size:   schema.Size{Width: 640, Height: 360},
		Legend: &schema.Legend{Outside: true, Top: true, LeftJustify: true, SampleText: true},
		XAxis:  schema.Axis{Label: "Input", Scale: schema.LinearScale, MajorGrid: true, MinorGrid: true},
		YAxis:  schema.Axis{Label: "Average time (ns)", Scale: schema.LinearScale},
		Series: []schema.Series{
			{Label: "quick", Color: schema.DarkBlue, Shape: schema.LineShape, X: []float64{1, 2, 3}, Y: []float64{3, 2, 1}, LineWidth: schema.LineWidth},
			{Color: schema.DarkBlue, Shape: schema.PointsShape, X: []float64{1, 2, 3}, Y: []float64{3, 2, 1}, PointSize: schema.PointSize},
			{Label: "PDF", Color: schema.DarkBlue, Shape: schema.BandShape, X: []float64{1, 2, 3}, Y: []float64{1, 1.4, 1}, Y2: []float64{0, -0.4, 0}},
		},
		Output: output,
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "sort/quick", "sort/quick"},
		{"newline", "line one\nline two", "line one line two"},
		{"run of controls", "a\r\n\tb", "a b"},
		{"unicode kept", "µs ünïcode", "µs ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
			assert.Equal(t, tt.expected, Escaper.Escape(tt.input))
		})
	}
}

func TestForPath(t *testing.T) {
	assert.IsType(t, &JSONRenderer{}, ForPath("out/plot.JSON", nil))
	assert.IsType(t, &GonumRenderer{}, ForPath("out/plot.svg", nil))
	assert.IsType(t, &GonumRenderer{}, ForPath("out/plot.png", nil))
}

func TestJSONRenderer(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.json")
	desc := sampleDescription(out)

	job, err := (&JSONRenderer{}).Render(desc)
	require.NoError(t, err)
	require.NoError(t, job.Wait())
	assert.Equal(t, out, job.Output())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got schema.PlotDescription
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, desc.Title, got.Title)
	assert.Len(t, got.Series, 3)
}

func TestGonumRenderer(t *testing.T) {
	for _, ext := range []string{".svg", ".png"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "plot"+ext)

			job, err := (&GonumRenderer{}).Render(sampleDescription(out))
			require.NoError(t, err)

			<-job.Done()
			require.NoError(t, job.Wait())

			info, err := os.Stat(out)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestGonumRendererLogAxes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "violin.svg")
	desc := sampleDescription(out)
	desc.XAxis.Scale = schema.LogarithmicScale
	desc.XAxis.Range = &schema.Range{Min: 0, Max: 10}
	desc.Series[2].X = []float64{-1, 2, 3}

	job, err := (&GonumRenderer{}).Render(desc)
	require.NoError(t, err)
	require.NoError(t, job.Wait())
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*schema.PlotDescription)
	}{
		{"no output", func(d *schema.PlotDescription) { d.Output = "" }},
		{"no series", func(d *schema.PlotDescription) { d.Series = nil }},
		{"length mismatch", func(d *schema.PlotDescription) { d.Series[0].Y = []float64{1} }},
		{"band without lower edge", func(d *schema.PlotDescription) { d.Series[2].Y2 = nil }},
		{"unknown shape", func(d *schema.PlotDescription) { d.Series[0].Shape = "bars" }},
		{"zero size", func(d *schema.PlotDescription) { d.Size = schema.Size{} }},
		{"no positive values on log axis", func(d *schema.PlotDescription) {
			d.YAxis.Scale = schema.LogarithmicScale
			d.Series = d.Series[:1]
			d.Series[0].Y = []float64{0, -1, -2}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := sampleDescription(filepath.Join(t.TempDir(), "plot.svg"))
			tt.mutate(&desc)

			job, err := (&GonumRenderer{}).Render(desc)
			require.Error(t, err)
			assert.Nil(t, job)
			assert.ErrorIs(t, err, schema.ErrRender)
		})
	}
}

func TestJobReportsSaveFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "dir", "plot.svg")

	job, err := (&GonumRenderer{}).Render(sampleDescription(out))
	require.NoError(t, err)
	err = job.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrRender)
}

func TestCompletedJob(t *testing.T) {
	boom := errors.New("boom")
	job := CompletedJob("x.svg", boom)
	<-job.Done()
	assert.ErrorIs(t, job.Wait(), boom)
	assert.Equal(t, "x.svg", job.Output())
}

func TestClipForLog(t *testing.T) {
	s := schema.Series{Shape: schema.BandShape, X: []float64{-1, 1, 2}, Y: []float64{1, 0, 2}, Y2: []float64{1, 1, 1}}

	kept, dropped := clipForLog(s, true, false)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []float64{1, 2}, kept.X)

	kept, dropped = clipForLog(s, true, true)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, []float64{2}, kept.X)
	assert.Equal(t, []float64{1}, kept.Y2)

	same, dropped := clipForLog(s, false, false)
	assert.Zero(t, dropped)
	assert.Equal(t, s, same)
}
