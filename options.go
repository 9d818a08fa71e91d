package poincare

// Palette maps the three regions to colors.
type Palette struct {
	Outside RGBA
	Even    RGBA
	Odd     RGBA
}

// DefaultPalette returns the classic Circle Limit coloring: opaque black
// outside the disk, yellow for even coverage, blue for odd.
func DefaultPalette() Palette {
	return Palette{Outside: Black, Even: Yellow, Odd: Blue}
}

// Color returns the palette entry for a region.
func (p Palette) Color(r Region) RGBA {
	switch r {
	case RegionOutside:
		return p.Outside
	case RegionOdd:
		return p.Odd
	default:
		return p.Even
	}
}

// Option configures a Tiling during creation.
// Use functional options to customize Tiling behavior.
//
// Example:
//
//	// Default coloring and mapping
//	tiling := poincare.New()
//
//	// Custom colors, square disk on non-square textures
//	tiling := poincare.New(poincare.WithPalette(p), poincare.WithAspectCorrection())
type Option func(*config)

// config holds optional configuration for Tiling creation.
type config struct {
	palette       Palette
	aspectCorrect bool
	workers       int
}

// defaultConfig returns the default tiling options.
func defaultConfig() config {
	return config{
		palette: DefaultPalette(),
	}
}

// WithPalette overrides the region colors.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithAspectCorrection normalizes the y axis by the texture height instead
// of its width, keeping the disk circular on non-square textures. The
// default mapping divides both axes by the width.
func WithAspectCorrection() Option {
	return func(c *config) {
		c.aspectCorrect = true
	}
}

// WithWorkers sets the number of rasterization workers used by Render.
// Zero or negative selects GOMAXPROCS. The worker count never changes
// the rendered output, only how the rows are scheduled.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
