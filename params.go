package slotting

import "fmt"

// Parameters is the validated, immutable input of the model builder.
type Parameters struct {
	Products  int
	Classes   int
	Locations int

	Area   []float64
	Depth  []float64
	Demand []float64

	FixedCost  float64
	HandleCost float64

	// RMin/RMax override the derived bounds on the depth-to-area ratio
	// when both are set (> 0).
	RMin float64
	RMax float64
}

// Bounds are the global box bounds used by the linearization. They are
// computed once from the input data and never change afterwards.
type Bounds struct {
	EMin float64
	EMax float64
	NMin float64
	NMax float64
	RMin float64
	RMax float64
}

// EpsilonArea is the lower bound given to the per-class area variables.
// It keeps the depth-to-area ratio well-defined without forcing a class
// to actually open area, since it sits below usual solver feasibility
// tolerances.
const EpsilonArea = 1e-6

const defaultRMin = 0.1

// LoadParameters validates the raw problem data and returns an immutable
// Parameters value. Array lengths must match their counts exactly and no
// value may be negative.
func LoadParameters(products, classes, locations int, area, depth, demand []float64, fixedCost, handleCost float64) (Parameters, error) {
	var p Parameters
	if products <= 0 {
		return p, &ValidationError{Field: "products", Reason: "count must be positive"}
	}
	if classes <= 0 {
		return p, &ValidationError{Field: "classes", Reason: "count must be positive"}
	}
	if locations <= 0 {
		return p, &ValidationError{Field: "locations", Reason: "count must be positive"}
	}
	if len(area) != locations {
		return p, &ValidationError{Field: "area", Reason: "length does not match location count"}
	}
	if len(depth) != locations {
		return p, &ValidationError{Field: "depth", Reason: "length does not match location count"}
	}
	if len(demand) != products {
		return p, &ValidationError{Field: "demand", Reason: "length does not match product count"}
	}
	for l, a := range area {
		if a < 0 {
			return p, &ValidationError{Field: "area", Reason: negativeAt(l)}
		}
	}
	for l, d := range depth {
		if d < 0 {
			return p, &ValidationError{Field: "depth", Reason: negativeAt(l)}
		}
	}
	for i, d := range demand {
		if d < 0 {
			return p, &ValidationError{Field: "demand", Reason: negativeAt(i)}
		}
	}
	if fixedCost < 0 {
		return p, &ValidationError{Field: "fixed_cost", Reason: "must not be negative"}
	}
	if handleCost < 0 {
		return p, &ValidationError{Field: "handle_cost", Reason: "must not be negative"}
	}

	p = Parameters{
		Products:   products,
		Classes:    classes,
		Locations:  locations,
		Area:       append([]float64(nil), area...),
		Depth:      append([]float64(nil), depth...),
		Demand:     append([]float64(nil), demand...),
		FixedCost:  fixedCost,
		HandleCost: handleCost,
	}
	return p, nil
}

// LoadInstance is a convenience wrapper validating an Instance read from
// JSON, carrying over its optional ratio bounds.
func LoadInstance(inst Instance) (Parameters, error) {
	p, err := LoadParameters(inst.Products, inst.Classes, inst.Locations, inst.Area, inst.Depth, inst.Demand, inst.FixedCost, inst.HandleCost)
	if err != nil {
		return p, err
	}
	if inst.RMin < 0 || inst.RMax < 0 {
		return p, &ValidationError{Field: "r_min", Reason: "ratio bounds must not be negative"}
	}
	p.RMin = inst.RMin
	p.RMax = inst.RMax
	return p, nil
}

// ComputeBounds derives the global box bounds from the parameters.
// EMax and NMax are the trivially valid sums over all locations and
// products. The ratio bounds default to [0.1, max depth] unless the
// parameters override them.
func ComputeBounds(p Parameters) Bounds {
	b := Bounds{
		EMin: EpsilonArea,
		NMin: 0,
		RMin: defaultRMin,
	}
	for _, a := range p.Area {
		b.EMax += a
	}
	for _, d := range p.Demand {
		b.NMax += d
	}
	for _, d := range p.Depth {
		if d > b.RMax {
			b.RMax = d
		}
	}
	if p.RMin > 0 || p.RMax > 0 {
		b.RMin = p.RMin
		b.RMax = p.RMax
	}
	return b
}

func negativeAt(i int) string {
	return fmt.Sprintf("negative value at index %d", i)
}
