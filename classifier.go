package poincare

// Region identifies which part of the texture plane a point falls in.
type Region int

const (
	// RegionOutside lies beyond the closed unit disk.
	RegionOutside Region = iota

	// RegionEven is covered by an even number of geodesic circles,
	// zero included.
	RegionEven

	// RegionOdd is covered by an odd number of geodesic circles.
	RegionOdd
)

// String returns a human-readable region name.
func (r Region) String() string {
	switch r {
	case RegionOutside:
		return "outside"
	case RegionEven:
		return "even"
	case RegionOdd:
		return "odd"
	default:
		return "unknown"
	}
}

// Classifier assigns texture-plane points to regions by counting the
// geodesic circles that contain them.
type Classifier struct {
	geodesics []Geodesic
}

// NewClassifier creates a classifier over the given geodesic set.
// The slice is not copied; callers must not mutate it afterwards.
func NewClassifier(gs []Geodesic) *Classifier {
	return &Classifier{geodesics: gs}
}

// CoverageCount returns how many geodesic circles contain p.
// A linear scan: the fixed lattice yields 54 circles, far too few for a
// spatial index to pay off at texture resolutions.
func (c *Classifier) CoverageCount(p Point) int {
	n := 0
	for _, g := range c.geodesics {
		if g.Contains(p) {
			n++
		}
	}
	return n
}

// Classify maps a point to its region. Points with |p| > 1 are outside;
// the unit circle itself still classifies by coverage parity.
func (c *Classifier) Classify(p Point) Region {
	if p.Length() > 1 {
		return RegionOutside
	}
	if c.CoverageCount(p)%2 == 0 {
		return RegionEven
	}
	return RegionOdd
}
