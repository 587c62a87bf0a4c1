// SPDX-License-Identifier: MIT

package solver

import "math"

// Requirement is one line of a solved plan.
type Requirement[R comparable] struct {
	Resource R
	// Units is the fractional number of production units.
	Units float64
	// Factories is Units rounded up to whole production units.
	Factories int
}

// Solution holds the unit count of every resource of a solved network,
// in graph handle order. It is immutable and safe for concurrent reads.
type Solution[R comparable] struct {
	resources []R
	units     []float64
	index     map[R]int
}

// decode snaps near-zero values to 0 and indexes the result.
// Values within DefaultSnapTolerance of zero become exactly 0, which also
// removes -0. Negative unit counts (a network whose internal consumption
// exceeds what the targets allow) are reported unchanged.
func decode[R comparable](resources []R, x []float64) *Solution[R] {
	s := &Solution[R]{
		resources: resources,
		units:     make([]float64, len(x)),
		index:     make(map[R]int, len(resources)),
	}
	for i, v := range x {
		if math.Abs(v) <= DefaultSnapTolerance {
			v = 0
		}
		s.units[i] = v
		s.index[resources[i]] = i
	}

	return s
}

// Len returns the number of resources in the solution.
func (s *Solution[R]) Len() int { return len(s.resources) }

// Units returns the fractional unit count of r.
func (s *Solution[R]) Units(r R) (float64, bool) {
	i, ok := s.index[r]
	if !ok {
		return 0, false
	}

	return s.units[i], true
}

// Factories returns the unit count of r rounded up to whole production
// units. Values within DefaultSnapTolerance above an integer are not bumped.
func (s *Solution[R]) Factories(r R) (int, bool) {
	u, ok := s.Units(r)
	if !ok {
		return 0, false
	}

	return ceilUnits(u), true
}

// Resources returns the resources in solution order.
func (s *Solution[R]) Resources() []R {
	out := make([]R, len(s.resources))
	copy(out, s.resources)

	return out
}

// Vector returns a copy of the raw unit counts in solution order.
func (s *Solution[R]) Vector() []float64 {
	out := make([]float64, len(s.units))
	copy(out, s.units)

	return out
}

// All returns one Requirement per resource, in solution order.
func (s *Solution[R]) All() []Requirement[R] {
	out := make([]Requirement[R], len(s.units))
	for i, u := range s.units {
		out[i] = Requirement[R]{Resource: s.resources[i], Units: u, Factories: ceilUnits(u)}
	}

	return out
}

// Required returns only the resources that need at least one production unit.
func (s *Solution[R]) Required() []Requirement[R] {
	out := make([]Requirement[R], 0, len(s.units))
	for _, req := range s.All() {
		if req.Factories > 0 {
			out = append(out, req)
		}
	}

	return out
}

// TotalFactories sums Factories over all resources.
func (s *Solution[R]) TotalFactories() int {
	var total int
	for _, u := range s.units {
		if f := ceilUnits(u); f > 0 {
			total += f
		}
	}

	return total
}

func ceilUnits(u float64) int {
	return int(math.Ceil(u - DefaultSnapTolerance))
}
