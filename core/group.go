package core

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/huangsam/benchplot/core/algo"
	"github.com/huangsam/benchplot/schema"
)

// Group is a set of curves sharing one function identity, drawn as one series.
type Group struct {
	Function *string
	Curves   []schema.Curve
}

// Name returns the function identity and whether it was set.
func (g Group) Name() (string, bool) {
	if g.Function == nil {
		return "", false
	}
	return *g.Function, true
}

// Point is one (parameter, mean) pair of a group.
type Point struct {
	X    float64
	Mean float64
}

// Points returns the (parameter, mean) pairs of every member, in member order.
// A member without a numeric parameter is a caller-contract error.
func (g Group) Points() ([]Point, error) {
	points := make([]Point, 0, len(g.Curves))
	for _, c := range g.Curves {
		x, err := c.ID.AsNumber()
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Mean: algo.Mean(c.Sample)})
	}
	return points, nil
}

// SortedPoints returns Points ordered by ascending parameter.
func (g Group) SortedPoints() ([]Point, error) {
	points, err := g.Points()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return points, nil
}

// sameFunction compares optional identities; nil matches only nil.
func sameFunction(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// functionKey maps an optional identity to a map key. ok is false for nil.
type functionKey struct {
	name string
	ok   bool
}

func keyOf(f *string) functionKey {
	if f == nil {
		return functionKey{}
	}
	return functionKey{name: *f, ok: true}
}

// GroupCurves gathers curves by function identity.
//
// In runs mode every consecutive run of equal identity is one group, so
// [A, A, B, B, A] gives three groups; an identity seen again after another
// one is logged as a split group. Strict mode rejects that input with a
// caller-contract error. Partition mode merges all curves of an identity
// into the group where it first appeared.
func GroupCurves(curves []schema.Curve, mode schema.GroupingMode, logger *slog.Logger) ([]Group, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if mode == "" {
		mode = schema.RunsGrouping
	}
	if _, ok := schema.ValidGroupingModes[mode]; !ok {
		return nil, schema.NewContractError("group", "", "unknown grouping mode %q", mode)
	}

	var groups []Group
	seen := make(map[functionKey]int)
	for _, c := range curves {
		fn := c.ID.FunctionID
		if n := len(groups); n > 0 && sameFunction(groups[n-1].Function, fn) {
			groups[n-1].Curves = append(groups[n-1].Curves, c)
			continue
		}

		key := keyOf(fn)
		if idx, dup := seen[key]; dup {
			switch mode {
			case schema.StrictGrouping:
				return nil, schema.NewContractError("group", c.ID.DisplayTitle(),
					"function %q reappears after another function; sort curves by function", key.name)
			case schema.PartitionGrouping:
				groups[idx].Curves = append(groups[idx].Curves, c)
				continue
			default:
				logger.Warn("function reappears after another function, plotting a split group",
					"function", key.name, "curve", c.ID.DisplayTitle())
			}
		} else {
			seen[key] = len(groups)
		}
		groups = append(groups, Group{Function: fn, Curves: []schema.Curve{c}})
	}
	return groups, nil
}
