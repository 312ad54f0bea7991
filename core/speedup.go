package core

import (
	"math"
	"slices"
	"strconv"

	"github.com/huangsam/benchplot/schema"
)

// speedupRecord collects the contributions seen at one parameter value.
type speedupRecord struct {
	baseline      float64
	hasBaseline   bool
	comparison    float64
	hasComparison bool
	count         int
}

// SpeedupPoint is the resolved ratio at one parameter value.
type SpeedupPoint struct {
	X          uint64
	Baseline   float64
	Comparison float64
	Ratio      float64 // Baseline mean divided by comparison mean
}

// SpeedupResult is the output of speedup normalization.
type SpeedupResult struct {
	Points  []SpeedupPoint // Ascending by X
	MaxMean float64        // Largest raw mean across all contributors
}

// XY returns the points as plot coordinates.
func (r SpeedupResult) XY() (xs, ys []float64) {
	xs = make([]float64, len(r.Points))
	ys = make([]float64, len(r.Points))
	for i, p := range r.Points {
		xs[i] = float64(p.X)
		ys[i] = p.Ratio
	}
	return xs, ys
}

// Speedup normalizes groups against the baseline function. Every parameter
// value, truncated to an integer key, must have exactly one baseline curve
// and one comparison curve; the ratio is always baseline over comparison,
// whatever the order the two were seen in.
func Speedup(groups []Group, baseline string) (SpeedupResult, error) {
	records := make(map[uint64]*speedupRecord)
	var keys []uint64
	maxMean := 1.0

	for _, g := range groups {
		name, ok := g.Name()
		if !ok {
			title := ""
			if len(g.Curves) > 0 {
				title = g.Curves[0].ID.DisplayTitle()
			}
			return SpeedupResult{}, schema.NewContractError("speedup", title,
				"speedup mode requires a function identity on every curve")
		}
		points, err := g.Points()
		if err != nil {
			return SpeedupResult{}, err
		}
		for i, p := range points {
			title := g.Curves[i].ID.DisplayTitle()
			if p.X < 0 || p.X >= math.MaxUint64 || math.IsNaN(p.X) || math.IsInf(p.X, 0) {
				return SpeedupResult{}, schema.NewContractError("speedup", title,
					"parameter %v cannot be used as a speedup key", p.X)
			}
			key := uint64(p.X)
			rec, seen := records[key]
			if !seen {
				rec = &speedupRecord{}
				records[key] = rec
				keys = append(keys, key)
			}
			rec.count++
			if rec.count > 2 {
				return SpeedupResult{}, schema.NewContractError("speedup", title,
					"more than two curves at parameter %d", key)
			}
			if name == baseline {
				if rec.hasBaseline {
					return SpeedupResult{}, schema.NewContractError("speedup", title,
						"two baseline curves at parameter %d", key)
				}
				rec.baseline, rec.hasBaseline = p.Mean, true
			} else {
				if rec.hasComparison {
					return SpeedupResult{}, schema.NewContractError("speedup", title,
						"two comparison curves at parameter %d", key)
				}
				rec.comparison, rec.hasComparison = p.Mean, true
			}
			if p.Mean > maxMean {
				maxMean = p.Mean
			}
		}
	}

	slices.Sort(keys)
	result := SpeedupResult{Points: make([]SpeedupPoint, 0, len(keys)), MaxMean: maxMean}
	for _, key := range keys {
		rec := records[key]
		switch {
		case !rec.hasBaseline:
			return SpeedupResult{}, schema.NewContractError("speedup", strconv.FormatUint(key, 10),
				"no baseline %q curve at this parameter", baseline)
		case !rec.hasComparison:
			return SpeedupResult{}, schema.NewContractError("speedup", strconv.FormatUint(key, 10),
				"no comparison curve at this parameter")
		}
		ratio := rec.baseline / rec.comparison
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return SpeedupResult{}, schema.NewContractError("speedup", strconv.FormatUint(key, 10),
				"ratio of means %v / %v is not finite", rec.baseline, rec.comparison)
		}
		result.Points = append(result.Points, SpeedupPoint{
			X:          key,
			Baseline:   rec.baseline,
			Comparison: rec.comparison,
			Ratio:      ratio,
		})
	}
	return result, nil
}
