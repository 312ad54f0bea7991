package schema

// PlotConfiguration carries the per-plot options for comparison plots.
type PlotConfiguration struct {
	XLabel     string       `json:"x_label,omitempty"`    // Overrides the derived X axis label
	YLabel     string       `json:"y_label,omitempty"`    // Overrides the derived Y axis label
	Label      string       `json:"label,omitempty"`      // Overrides the whole plot title
	XScale     AxisScale    `json:"x_scale"`              // Linear or logarithmic X axis
	YScale     AxisScale    `json:"y_scale"`              // Linear or logarithmic Y axis
	XGridMajor bool         `json:"x_grid_major"`         // Show major grid lines on X
	XGridMinor bool         `json:"x_grid_minor"`         // Show minor grid lines on X
	YGridMajor bool         `json:"y_grid_major"`         // Show major grid lines on Y
	YGridMinor bool         `json:"y_grid_minor"`         // Show minor grid lines on Y
	Tics       []int64      `json:"tics,omitempty"`       // Explicit X tick positions, labelled as byte sizes
	Speedup    bool         `json:"speedup"`              // Plot a ratio against SpeedupID instead of means
	SpeedupID  string       `json:"speedup_id,omitempty"` // Function identity of the baseline
	Grouping   GroupingMode `json:"grouping,omitempty"`   // How curves are gathered into groups
}

// DefaultPlotConfiguration returns linear axes without grids and run-based grouping.
func DefaultPlotConfiguration() PlotConfiguration {
	return PlotConfiguration{
		XScale:   LinearScale,
		YScale:   LinearScale,
		Grouping: RunsGrouping,
	}
}

// Color is an opaque RGB colour. It satisfies image/color.Color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Size is a canvas size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Legend describes where the key is placed.
type Legend struct {
	Outside     bool `json:"outside"`      // Draw outside the data area
	Top         bool `json:"top"`          // Anchor to the top edge
	Left        bool `json:"left"`         // Anchor to the left edge
	LeftJustify bool `json:"left_justify"` // Left-justify entry text
	SampleText  bool `json:"sample_text"`  // Draw the sample glyph before the text
}

// Range is an explicit axis range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Tick is one labelled tick position.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Axis describes one plot axis.
type Axis struct {
	Label     string    `json:"label"`
	Scale     AxisScale `json:"scale"`
	Range     *Range    `json:"range,omitempty"`
	Ticks     []Tick    `json:"ticks,omitempty"`
	MajorGrid bool      `json:"major_grid"`
	MinorGrid bool      `json:"minor_grid"`
}

// Series is one drawable unit. Bands use Y as the upper edge and Y2 as the lower edge.
type Series struct {
	Label     string    `json:"label,omitempty"`
	Color     Color     `json:"color"`
	Shape     Shape     `json:"shape"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Y2        []float64 `json:"y2,omitempty"`
	LineWidth float64   `json:"line_width,omitempty"`
	PointSize float64   `json:"point_size,omitempty"`
}

// PlotDescription is the complete, backend-agnostic description of one plot.
type PlotDescription struct {
	Title  string   `json:"title"`
	Font   string   `json:"font"`
	Size   Size     `json:"size"`
	Legend *Legend  `json:"legend,omitempty"`
	XAxis  Axis     `json:"x_axis"`
	YAxis  Axis     `json:"y_axis"`
	Series []Series `json:"series"`
	Output string   `json:"output"`
}
