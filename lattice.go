package poincare

import "math"

// Lattice parameters. The generator set is fixed: nine directions fanned
// 40 degrees apart, six hyperbolic distances along each.
const (
	// NumDirections is the number of generator directions.
	NumDirections = 9

	// AngleStep is the angle between adjacent generator directions, in radians.
	AngleStep = 40 * math.Pi / 180

	// MinDistance is the hyperbolic distance of the innermost lattice ring.
	MinDistance = 0.5

	// MaxDistance is the hyperbolic distance of the outermost lattice ring.
	MaxDistance = 5.5

	// DistanceStep is the spacing between consecutive rings.
	DistanceStep = 1.0

	// NumDistances is the number of rings per direction.
	NumDistances = 6

	// NumPoints is the total lattice size.
	NumPoints = NumDirections * NumDistances
)

// Directions returns the generator directions as unit vectors in the
// z = 0 plane: (cos(i*40°), sin(i*40°), 0) for i = 0..8.
func Directions() []Vec3 {
	dirs := make([]Vec3, NumDirections)
	for i := range dirs {
		angle := float64(i) * AngleStep
		dirs[i] = V3(math.Cos(angle), math.Sin(angle), 0)
	}
	return dirs
}

// Distances returns the hyperbolic distances of the lattice rings:
// 0.5, 1.5, ..., 5.5. All values are exactly representable, so the
// stepping loop terminates after exactly NumDistances iterations.
func Distances() []float64 {
	ds := make([]float64, 0, NumDistances)
	for d := MinDistance; d <= MaxDistance; d += DistanceStep {
		ds = append(ds, d)
	}
	return ds
}

// LatticePoints returns the hyperboloid points of the fixed lattice in
// direction-major order: all rings of direction 0, then direction 1, and
// so on. The result is deterministic.
//
// Each point composes the apex (0,0,1) with a generator direction iv and
// a distance d in two steps:
//
//	ivv = (0,0,1)*sinh(d) + iv*cosh(d)
//	p   = (0,0,1)*cosh(d) + ivv*sinh(d)
//
// so p.Z = cosh(d) + sinh(d)*sinh(d). Under the disk projection the extra
// cosh factor in x and y cancels against 1+z and p lands at radius
// tanh(d/2) from the disk center, the Poincaré image of a point at
// hyperbolic distance d.
func LatticePoints() []Vec3 {
	apex := V3(0, 0, 1)
	points := make([]Vec3, 0, NumPoints)
	for _, iv := range Directions() {
		for _, d := range Distances() {
			sh, ch := math.Sinh(d), math.Cosh(d)
			ivv := apex.Mul(sh).Add(iv.Mul(ch))
			points = append(points, apex.Mul(ch).Add(ivv.Mul(sh)))
		}
	}
	return points
}
