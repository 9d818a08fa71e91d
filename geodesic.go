package poincare

import (
	"errors"
	"math"
)

// ErrDiskOrigin is returned when a geodesic is requested through the disk
// center. Hyperbolic lines through the origin are Euclidean diameters, not
// circles, so no finite orthogonal circle exists there.
var ErrDiskOrigin = errors.New("poincare: no geodesic circle through the disk origin")

// Geodesic is a hyperbolic line of the Poincaré disk: a Euclidean circle
// that meets the unit circle at right angles. Radius keeps the sign of the
// construction (negative when the seed point lies outside the unit disk);
// containment always compares against its magnitude.
type Geodesic struct {
	Center Point
	Radius float64
}

// GeodesicThrough constructs the geodesic whose supporting circle passes
// through q and is orthogonal to the unit circle. With r = |q| the signed
// radius is g = (1/r - r)/2 and the center is q + normalize(q)*g, placed
// on the ray from the origin through q. The construction satisfies
// |Center|^2 = 1 + Radius^2 exactly, the orthogonality condition.
func GeodesicThrough(q Point) (Geodesic, error) {
	r := q.Length()
	if r == 0 {
		return Geodesic{}, ErrDiskOrigin
	}
	g := (1/r - r) / 2
	return Geodesic{
		Center: q.Add(q.Normalize().Mul(g)),
		Radius: g,
	}, nil
}

// BuildGeodesics constructs one geodesic per disk point, preserving order.
func BuildGeodesics(points []Point) ([]Geodesic, error) {
	gs := make([]Geodesic, len(points))
	for i, q := range points {
		g, err := GeodesicThrough(q)
		if err != nil {
			return nil, err
		}
		gs[i] = g
	}
	return gs, nil
}

// Contains reports whether p lies inside or on the supporting circle.
// The boundary counts as contained.
func (g Geodesic) Contains(p Point) bool {
	return p.Distance(g.Center) <= math.Abs(g.Radius)
}
