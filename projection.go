package poincare

// ProjectToDisk maps a hyperboloid point onto the Poincaré disk: both
// coordinates divide by z+1. Every lattice point has z >= cosh(0.5), so
// the denominator never degenerates and the image lies strictly inside
// the unit circle.
func ProjectToDisk(p Vec3) Point {
	return Pt(p.X/(p.Z+1), p.Y/(p.Z+1))
}

// DiskPoints projects a slice of hyperboloid points, preserving order.
func DiskPoints(points []Vec3) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = ProjectToDisk(p)
	}
	return out
}
