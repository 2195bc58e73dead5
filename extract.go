package slotting

import "fmt"

// assignThreshold separates set from unset indicator values. Solvers
// return near-binary fractional values within their integrality
// tolerance, so exact comparison against 1 would misread valid results.
const assignThreshold = 0.5

// Assignment maps every product and location to its chosen class.
// Locations may legitimately stay idle (class -1); products may not.
type Assignment struct {
	ProductClass  []int
	LocationClass []int
}

// IdleLocations lists the locations no class allocated.
func (a *Assignment) IdleLocations() []int {
	var idle []int
	for l, c := range a.LocationClass {
		if c < 0 {
			idle = append(idle, l)
		}
	}
	return idle
}

// ClassLocationCount returns how many locations each class received.
func (a *Assignment) ClassLocationCount(classes int) []int {
	counts := make([]int, classes)
	for _, c := range a.LocationClass {
		if c >= 0 {
			counts[c]++
		}
	}
	return counts
}

// Extract reads the solved indicator values back into an explicit
// assignment. For each product it selects the first class whose x value
// clears the threshold; a product with no class or a second class above
// the threshold violates the assignment structure and is reported as an
// error. Locations follow the same scan but may end up unassigned.
func Extract(m *Model, res *Result) (*Assignment, error) {
	if res == nil || res.Values == nil {
		return nil, fmt.Errorf("no solution values to extract")
	}
	if len(res.Values) != len(m.Vars) {
		return nil, fmt.Errorf("solution has %d values, model has %d variables", len(res.Values), len(m.Vars))
	}
	prm := m.params

	a := &Assignment{
		ProductClass:  make([]int, prm.Products),
		LocationClass: make([]int, prm.Locations),
	}

	for p := 0; p < prm.Products; p++ {
		a.ProductClass[p] = -1
		for c := 0; c < prm.Classes; c++ {
			if res.Values[m.XIndex(p, c)] > assignThreshold {
				if a.ProductClass[p] >= 0 {
					return nil, fmt.Errorf("product %d assigned to classes %d and %d", p, a.ProductClass[p], c)
				}
				a.ProductClass[p] = c
			}
		}
		if a.ProductClass[p] < 0 {
			return nil, fmt.Errorf("product %d not assigned to any class", p)
		}
	}

	for l := 0; l < prm.Locations; l++ {
		a.LocationClass[l] = -1
		for c := 0; c < prm.Classes; c++ {
			if res.Values[m.YIndex(l, c)] > assignThreshold {
				if a.LocationClass[l] >= 0 {
					return nil, fmt.Errorf("location %d allocated to classes %d and %d", l, a.LocationClass[l], c)
				}
				a.LocationClass[l] = c
			}
		}
	}

	return a, nil
}
