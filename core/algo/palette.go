// Package algo holds the leaf policies shared by both plot pipelines.
package algo

import "github.com/huangsam/benchplot/schema"

// NumColors is the size of the comparison palette.
const NumColors = 9

// comparisonColors is assigned to groups in the order they are encountered.
var comparisonColors = [NumColors]schema.Color{
	{R: 178, G: 34, B: 34},
	{R: 46, G: 139, B: 87},
	{R: 0, G: 139, B: 139},
	{R: 255, G: 215, B: 0},
	{R: 0, G: 0, B: 139},
	{R: 220, G: 20, B: 60},
	{R: 139, G: 0, B: 139},
	{R: 0, G: 255, B: 127},
	{R: 0, G: 50, B: 255},
}

// ColorFor returns the palette colour for the group at the given index.
// Negative indices wrap the same way positive ones do.
func ColorFor(index int) schema.Color {
	i := index % NumColors
	if i < 0 {
		i += NumColors
	}
	return comparisonColors[i]
}
