package poincare

import "testing"

func TestRegion_String(t *testing.T) {
	tests := []struct {
		r    Region
		want string
	}{
		{RegionOutside, "outside"},
		{RegionEven, "even"},
		{RegionOdd, "odd"},
		{Region(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Region(%d).String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}

func TestClassifier_OutsideBoundary(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name string
		p    Point
		want Region
	}{
		{"beyond the disk", Pt(1.2, 0), RegionOutside},
		{"diagonal corner", Pt(-1, -1), RegionOutside},
		// |p| = 1 exactly is not outside; with no circles the count is 0.
		{"on the unit circle", Pt(1, 0), RegionEven},
		{"just inside", Pt(0.999, 0), RegionEven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.p); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifier_CoverageParity(t *testing.T) {
	// Two overlapping circles on the x axis.
	gs := []Geodesic{
		{Center: Pt(0.5, 0), Radius: 0.5},
		{Center: Pt(0.25, 0), Radius: 0.5},
	}
	c := NewClassifier(gs)

	tests := []struct {
		name      string
		p         Point
		wantCount int
		want      Region
	}{
		{"in both circles", Pt(0.3, 0), 2, RegionEven},
		{"in one circle", Pt(0.9, 0), 1, RegionOdd},
		{"in neither circle", Pt(0, 0.9), 0, RegionEven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CoverageCount(tt.p); got != tt.wantCount {
				t.Errorf("CoverageCount(%v) = %d, want %d", tt.p, got, tt.wantCount)
			}
			if got := c.Classify(tt.p); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifier_LatticeOrigin(t *testing.T) {
	// Every geodesic center sits at (r+1/r)/2 from the origin, which
	// always exceeds the circle radius (1/r-r)/2, so no lattice circle
	// covers the disk center.
	gs, err := BuildGeodesics(DiskPoints(LatticePoints()))
	if err != nil {
		t.Fatalf("BuildGeodesics() error: %v", err)
	}
	c := NewClassifier(gs)

	if got := c.CoverageCount(Pt(0, 0)); got != 0 {
		t.Errorf("CoverageCount(origin) = %d, want 0", got)
	}
	if got := c.Classify(Pt(0, 0)); got != RegionEven {
		t.Errorf("Classify(origin) = %v, want RegionEven", got)
	}
}
