// Package poincare renders hyperbolic tilings of the Poincaré disk.
//
// # Overview
//
// poincare builds a fixed lattice of points on the hyperboloid model of the
// hyperbolic plane, projects them onto the Poincaré disk, and surrounds each
// projected point with the hyperbolic line through it: a Euclidean circle
// orthogonal to the unit circle. Rasterizing the disk and coloring pixels by
// the parity of the number of covering circles yields an Escher-style
// "Circle Limit" texture.
//
// # Quick Start
//
//	import "github.com/gogpu/poincare"
//
//	tiling := poincare.New()
//	pm, err := tiling.Render(300, 300)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("tiling.png")
//
// # Pipeline
//
// Generation is a synchronous chain. New computes the lattice and its
// geodesic circles once; Render walks the pixel grid and classifies every
// pixel against the cached circles, spreading rows across a small worker
// pool (WithWorkers sets its size; the output never depends on it).
// Changing the texture resolution means calling Render again and uploading
// the fresh pixmap; no incremental update path exists.
//
// # Coordinate Systems
//
// A pixel (xc, yc) of a width-w texture maps to the plane as
// x = xc/w*2 - 1, y = yc/w*2 - 1. Both axes divide by the width, so
// non-square textures stretch the disk vertically; WithAspectCorrection
// switches the y axis to the height. Points with |p| > 1 lie outside the
// disk and take the palette's outside color.
//
// # Texture Resources
//
// The texture subpackage owns GPU-visible texture storage: an abstract
// Resource interface with software (CPU), OpenGL, and wgpu implementations,
// plus nearest/linear filter switching. The pixmap produced by Render is
// uploaded wholesale; resources never patch pixels in place.
package poincare

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
