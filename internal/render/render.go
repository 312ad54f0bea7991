// Package render turns plot descriptions into files. The gonum backend draws
// images with gonum.org/v1/plot; the JSON backend writes the description
// itself for debugging and downstream tooling.
package render

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
)

// Escape collapses control characters, including newlines, into single
// spaces so that titles and labels render on one line.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsControl(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// Escaper is the default text escaper.
var Escaper contract.Escaper = contract.EscapeFunc(Escape)

// ForPath picks a renderer from the output extension: .json writes the
// description, everything else is drawn by gonum.
func ForPath(path string, logger *slog.Logger) contract.Renderer {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return &JSONRenderer{}
	}
	return &GonumRenderer{Logger: logger}
}

// job is the handle for one asynchronous render.
type job struct {
	output string
	done   chan struct{}
	err    error
}

var _ contract.Job = &job{} // Compile-time check

// start runs fn in a goroutine and returns its handle. Panics inside fn are
// reported as render errors.
func start(output string, fn func() error) *job {
	j := &job{output: output, done: make(chan struct{})}
	go func() {
		defer close(j.done)
		defer func() {
			if r := recover(); r != nil {
				j.err = fmt.Errorf("%w: %s: %v", schema.ErrRender, output, r)
			}
		}()
		if err := fn(); err != nil {
			j.err = fmt.Errorf("%w: %s: %w", schema.ErrRender, output, err)
		}
	}()
	return j
}

// Done implements the Job interface.
func (j *job) Done() <-chan struct{} { return j.done }

// Wait implements the Job interface.
func (j *job) Wait() error {
	<-j.done
	return j.err
}

// Output implements the Job interface.
func (j *job) Output() string { return j.output }

// validate checks the structural requirements shared by every backend.
func validate(desc schema.PlotDescription) error {
	if desc.Output == "" {
		return fmt.Errorf("%w: no output path", schema.ErrRender)
	}
	if len(desc.Series) == 0 {
		return fmt.Errorf("%w: %s: plot has no series", schema.ErrRender, desc.Output)
	}
	for i, s := range desc.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: series %d (%s): %d x values but %d y values",
				schema.ErrRender, i, s.Label, len(s.X), len(s.Y))
		}
		if s.Shape == schema.BandShape && len(s.Y2) != len(s.X) {
			return fmt.Errorf("%w: band %d (%s): %d x values but %d lower values",
				schema.ErrRender, i, s.Label, len(s.X), len(s.Y2))
		}
		if _, ok := validShapes[s.Shape]; !ok {
			return fmt.Errorf("%w: series %d (%s): unknown shape %q", schema.ErrRender, i, s.Label, s.Shape)
		}
	}
	return nil
}

var validShapes = map[schema.Shape]struct{}{
	schema.LineShape:   {},
	schema.PointsShape: {},
	schema.BandShape:   {},
}
