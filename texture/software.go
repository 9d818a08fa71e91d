// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/poincare"
)

// SoftwareResource is a CPU-side texture resource.
// It keeps a private copy of the uploaded pixmap and applies filtering on
// the CPU when asked to rescale. It is the fallback resource kind and is
// always available.
type SoftwareResource struct {
	pm     *poincare.Pixmap
	filter FilterMode
	closed bool
}

// init registers the software resource on package import.
func init() {
	Register(ResourceSoftware, func() Resource {
		return &SoftwareResource{}
	})
}

// NewSoftwareResource creates a new CPU-side texture resource.
// The filter defaults to FilterNearest.
func NewSoftwareResource() *SoftwareResource {
	return &SoftwareResource{}
}

// Name returns the resource identifier.
func (r *SoftwareResource) Name() string {
	return ResourceSoftware
}

// Upload stores a private copy of pm, replacing any previous contents.
func (r *SoftwareResource) Upload(pm *poincare.Pixmap) error {
	if r.closed {
		return ErrResourceClosed
	}
	if pm == nil {
		return ErrNilPixmap
	}
	r.pm = pm.Clone()
	return nil
}

// SetFilter selects the sampling mode used by Scale.
func (r *SoftwareResource) SetFilter(m FilterMode) error {
	if r.closed {
		return ErrResourceClosed
	}
	if m != FilterNearest && m != FilterLinear {
		return fmt.Errorf("%w: %d", ErrUnknownFilter, int(m))
	}
	r.filter = m
	return nil
}

// Filter returns the current sampling mode.
func (r *SoftwareResource) Filter() FilterMode {
	return r.filter
}

// Size returns the dimensions of the stored pixmap, or zeros before the
// first upload.
func (r *SoftwareResource) Size() (width, height int) {
	if r.pm == nil {
		return 0, 0
	}
	return r.pm.Width(), r.pm.Height()
}

// Snapshot returns a copy of the stored pixmap.
func (r *SoftwareResource) Snapshot() (*poincare.Pixmap, error) {
	if r.closed {
		return nil, ErrResourceClosed
	}
	if r.pm == nil {
		return nil, ErrNoUpload
	}
	return r.pm.Clone(), nil
}

// Scale samples the stored pixmap into a new pixmap of the given size using
// the current filter mode. The stored contents are left untouched.
func (r *SoftwareResource) Scale(width, height int) (*poincare.Pixmap, error) {
	if r.closed {
		return nil, ErrResourceClosed
	}
	if r.pm == nil {
		return nil, ErrNoUpload
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", poincare.ErrInvalidSize, width, height)
	}

	scaler := xdraw.Scaler(xdraw.NearestNeighbor)
	if r.filter == FilterLinear {
		scaler = xdraw.BiLinear
	}

	src := r.pm.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return poincare.FromImage(dst), nil
}

// Close releases the stored pixmap. Close is idempotent.
func (r *SoftwareResource) Close() error {
	r.pm = nil
	r.closed = true
	return nil
}
