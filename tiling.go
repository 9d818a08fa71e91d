package poincare

import (
	"errors"
	"fmt"

	"github.com/gogpu/poincare/internal/parallel"
)

// ErrInvalidSize is returned by Render when either texture dimension is
// zero or negative.
var ErrInvalidSize = errors.New("poincare: texture dimensions must be positive")

// Tiling renders the fixed hyperbolic lattice as a colored tiling of the
// Poincaré disk. The geodesic set is computed once at construction; Render
// only rasterizes. A Tiling is immutable after New and safe to share.
type Tiling struct {
	classifier    *Classifier
	geodesics     []Geodesic
	palette       Palette
	aspectCorrect bool
	workers       int
}

// New builds the tiling pipeline: lattice points on the hyperboloid,
// projected onto the disk, one orthogonal circle per point.
func New(opts ...Option) *Tiling {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// The lattice keeps every point off the origin (innermost ring lands
	// at radius tanh(0.25)), so geodesic construction cannot fail here.
	geodesics, _ := BuildGeodesics(DiskPoints(LatticePoints()))

	Logger().Debug("tiling constructed",
		"geodesics", len(geodesics),
		"aspectCorrect", cfg.aspectCorrect)

	return &Tiling{
		classifier:    NewClassifier(geodesics),
		geodesics:     geodesics,
		palette:       cfg.palette,
		aspectCorrect: cfg.aspectCorrect,
		workers:       cfg.workers,
	}
}

// Geodesics returns a copy of the tiling's geodesic circles in lattice
// order.
func (t *Tiling) Geodesics() []Geodesic {
	out := make([]Geodesic, len(t.geodesics))
	copy(out, t.geodesics)
	return out
}

// Palette returns the tiling's region colors.
func (t *Tiling) Palette() Palette {
	return t.palette
}

// Render rasterizes the tiling into a freshly allocated pixmap. Each call
// produces a complete, independent buffer; regeneration means rendering
// again and uploading the new pixmap wholesale.
//
// A pixel (xc, yc) maps to the plane as x = xc/width*2 - 1 and
// y = yc/width*2 - 1; see WithAspectCorrection for the y divisor. Rows
// fill top to bottom, pixels left to right. Render is deterministic:
// equal receivers and arguments yield byte-identical pixmaps.
func (t *Tiling) Render(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	yDiv := float64(width)
	if t.aspectCorrect {
		yDiv = float64(height)
	}
	xDiv := float64(width)

	pm := NewPixmap(width, height)
	pool := parallel.NewPool(t.workers)
	defer pool.Close()

	// Rows write disjoint pixel spans, so they rasterize concurrently
	// without coordination.
	pool.Rows(height, func(yc int) {
		y := float64(yc)/yDiv*2 - 1
		for xc := 0; xc < width; xc++ {
			x := float64(xc)/xDiv*2 - 1
			region := t.classifier.Classify(Pt(x, y))
			pm.SetPixel(xc, yc, t.palette.Color(region))
		}
	})

	Logger().Debug("tiling rendered",
		"width", width, "height", height, "workers", pool.Workers())
	return pm, nil
}
