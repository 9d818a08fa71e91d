package poincare

import (
	"math"
	"testing"
)

func TestDirections(t *testing.T) {
	dirs := Directions()
	if len(dirs) != NumDirections {
		t.Fatalf("len(Directions()) = %d, want %d", len(dirs), NumDirections)
	}

	for i, d := range dirs {
		angle := float64(i) * AngleStep
		if math.Abs(d.X-math.Cos(angle)) > 1e-12 || math.Abs(d.Y-math.Sin(angle)) > 1e-12 {
			t.Errorf("direction %d = (%v, %v), want (%v, %v)", i, d.X, d.Y, math.Cos(angle), math.Sin(angle))
		}
		if d.Z != 0 {
			t.Errorf("direction %d has Z = %v, want 0", i, d.Z)
		}
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Errorf("direction %d is not a unit vector: |d| = %v", i, d.Length())
		}
	}
}

func TestDistances(t *testing.T) {
	want := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}
	got := Distances()
	if len(got) != NumDistances {
		t.Fatalf("len(Distances()) = %d, want %d", len(got), NumDistances)
	}
	for i := range want {
		// All ring distances are exactly representable in binary.
		if got[i] != want[i] {
			t.Errorf("Distances()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLatticePoints_Count(t *testing.T) {
	points := LatticePoints()
	if len(points) != NumPoints {
		t.Fatalf("len(LatticePoints()) = %d, want %d", len(points), NumPoints)
	}
}

func TestLatticePoints_DirectionMajorOrder(t *testing.T) {
	points := LatticePoints()
	dirs := Directions()
	dists := Distances()

	for i, iv := range dirs {
		for j, d := range dists {
			p := points[i*NumDistances+j]
			sh, ch := math.Sinh(d), math.Cosh(d)

			wantX := iv.X * ch * sh
			wantY := iv.Y * ch * sh
			wantZ := ch + sh*sh
			if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 || math.Abs(p.Z-wantZ) > 1e-9 {
				t.Errorf("point[%d][%d] = (%v, %v, %v), want (%v, %v, %v)",
					i, j, p.X, p.Y, p.Z, wantX, wantY, wantZ)
			}
		}
	}
}

func TestLatticePoints_MinimumHeight(t *testing.T) {
	// Every lattice point sits at least one innermost ring above the apex.
	minZ := math.Cosh(MinDistance)
	for i, p := range LatticePoints() {
		if p.Z < minZ {
			t.Errorf("point %d has Z = %v, want >= cosh(0.5) = %v", i, p.Z, minZ)
		}
	}
}

func TestLatticePoints_Deterministic(t *testing.T) {
	a := LatticePoints()
	b := LatticePoints()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestLatticePoints_FirstPoint(t *testing.T) {
	// Direction 0 is (1, 0, 0); the innermost ring lies at d = 0.5.
	p := LatticePoints()[0]
	sh, ch := math.Sinh(0.5), math.Cosh(0.5)

	if math.Abs(p.X-ch*sh) > 1e-12 {
		t.Errorf("X = %v, want %v", p.X, ch*sh)
	}
	if math.Abs(p.Y) > 1e-12 {
		t.Errorf("Y = %v, want 0", p.Y)
	}
	if math.Abs(p.Z-(ch+sh*sh)) > 1e-12 {
		t.Errorf("Z = %v, want %v", p.Z, ch+sh*sh)
	}
}
