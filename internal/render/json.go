package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
)

// JSONRenderer writes the plot description as indented JSON.
type JSONRenderer struct{}

var _ contract.Renderer = &JSONRenderer{} // Compile-time check

// Render implements the Renderer interface.
func (r *JSONRenderer) Render(desc schema.PlotDescription) (contract.Job, error) {
	if err := validate(desc); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal %s: %w", schema.ErrRender, desc.Output, err)
	}
	return start(desc.Output, func() error {
		return os.WriteFile(desc.Output, append(data, '\n'), 0o644)
	}), nil
}
