// Package spline implements the piecewise cubic Hermite curves that remap
// noise channels non-linearly. Splines are immutable once built and shared
// read-only across workers.
package spline

import "sort"

// Point is a single control point of a Spline.
type Point struct {
	// Location is the input value the point sits at. Locations are strictly
	// increasing within a spline.
	Location float64
	// Value is the output of the spline at Location.
	Value float64
	// Derivative is the slope of the curve at Location.
	Derivative float64
}

// Spline is an ordered sequence of control points evaluated as cubic Hermite
// segments between consecutive pairs.
type Spline struct {
	points []Point
}

// New builds a Spline from the control points passed, ordering them by
// location.
func New(points ...Point) Spline {
	p := append([]Point(nil), points...)
	sort.Slice(p, func(i, j int) bool { return p[i].Location < p[j].Location })
	return Spline{points: p}
}

// Evaluate maps t through the spline. Inputs below the first or above the
// last control point clamp to the corresponding endpoint's value; a spline
// with no control points evaluates to 0.
func (s Spline) Evaluate(t float64) float64 {
	if len(s.points) == 0 {
		return 0
	}
	if t <= s.points[0].Location {
		return s.points[0].Value
	}
	last := s.points[len(s.points)-1]
	if t >= last.Location {
		return last.Value
	}
	i := sort.Search(len(s.points), func(i int) bool { return s.points[i].Location > t })
	p0, p1 := s.points[i-1], s.points[i]

	h := p1.Location - p0.Location
	u := (t - p0.Location) / h
	u2 := u * u
	u3 := u2 * u
	return (2*u3-3*u2+1)*p0.Value +
		(u3-2*u2+u)*h*p0.Derivative +
		(-2*u3+3*u2)*p1.Value +
		(u3-u2)*h*p1.Derivative
}
