package schema

// Custom string types for type safety.
type (
	// ValueType describes what the numeric parameter of a benchmark measures.
	ValueType string

	// AxisScale represents how an axis maps values to positions.
	AxisScale string

	// GroupingMode controls how curves are gathered into plotted groups.
	GroupingMode string

	// ThroughputKind represents the unit of a throughput count.
	ThroughputKind string

	// Shape represents how a series is drawn.
	Shape string

	// InputFormat represents the on-disk encoding of benchmark samples.
	InputFormat string

	// UnitKind selects the value formatter used for measurements.
	UnitKind string
)

// All value types supported.
const (
	BytesValue    ValueType = "bytes"
	ElementsValue ValueType = "elements"
	PlainValue    ValueType = "value"
	AutoValue     ValueType = "auto" // detect from the first curve
)

// All axis scales supported.
const (
	LinearScale      AxisScale = "linear" // default
	LogarithmicScale AxisScale = "logarithmic"
)

// All grouping modes supported.
const (
	RunsGrouping      GroupingMode = "runs" // default
	StrictGrouping    GroupingMode = "strict"
	PartitionGrouping GroupingMode = "partition"
)

// All throughput kinds supported.
const (
	BytesThroughput    ThroughputKind = "bytes"
	ElementsThroughput ThroughputKind = "elements"
)

// All series shapes supported.
const (
	LineShape   Shape = "line"
	PointsShape Shape = "points"
	BandShape   Shape = "band"
)

// All input formats supported.
const (
	AutoFormat    InputFormat = "auto" // default, picked from the file extension
	JSONFormat    InputFormat = "json"
	CSVFormat     InputFormat = "csv"
	ParquetFormat InputFormat = "parquet"
	SQLiteFormat  InputFormat = "sqlite"
)

// All unit kinds supported.
const (
	DurationUnit UnitKind = "duration" // default, samples in nanoseconds
	DecimalUnit  UnitKind = "decimal"
)

// Plot layout constants shared by every backend.
const (
	DefaultFont      = "Helvetica"
	DefaultWidth     = 1280
	DefaultHeight    = 720
	LineWidth        = 2.0
	PointSize        = 0.75
	KDEPoints        = 500
	ViolinHalfWidth  = 0.45
	ViolinBaseHeight = 200
	ViolinLaneHeight = 25
	SpeedupLabel     = "Speedup"
	DensityLabel     = "PDF"
)

// DarkBlue is the fill used for violin bands.
var DarkBlue = Color{R: 31, G: 120, B: 180}

// ValidValueTypes lists all valid value types.
var ValidValueTypes = map[ValueType]struct{}{
	BytesValue:    {},
	ElementsValue: {},
	PlainValue:    {},
	AutoValue:     {},
}

// ValidAxisScales lists all valid axis scales.
var ValidAxisScales = map[AxisScale]struct{}{
	LinearScale:      {},
	LogarithmicScale: {},
}

// ValidGroupingModes lists all valid grouping modes.
var ValidGroupingModes = map[GroupingMode]struct{}{
	RunsGrouping:      {},
	StrictGrouping:    {},
	PartitionGrouping: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoFormat:    {},
	JSONFormat:    {},
	CSVFormat:     {},
	ParquetFormat: {},
	SQLiteFormat:  {},
}

// ValidUnitKinds lists all valid unit kinds.
var ValidUnitKinds = map[UnitKind]struct{}{
	DurationUnit: {},
	DecimalUnit:  {},
}
