// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texture owns the GPU-visible storage for rendered tilings.
//
// A Resource holds exactly one texture. Uploading a pixmap replaces the
// stored pixels wholesale (dimensions may change between uploads); switching
// the filter mode changes sampling only and never touches pixel data. The
// two concerns are deliberately independent so interactive shells can route
// resolution and filter commands separately.
//
// Implementations register themselves by name; Default picks the best
// available one. The software resource always works and is the fallback.
package texture

import (
	"errors"

	"github.com/gogpu/poincare"
)

// Common resource errors.
var (
	// ErrResourceClosed is returned for operations on a closed resource.
	ErrResourceClosed = errors.New("texture: resource is closed")

	// ErrNilPixmap is returned when Upload receives a nil pixmap.
	ErrNilPixmap = errors.New("texture: nil pixmap")

	// ErrNoUpload is returned by operations that need pixel data before
	// the first Upload.
	ErrNoUpload = errors.New("texture: no pixmap uploaded")

	// ErrUnknownFilter is returned for filter modes outside the enum.
	ErrUnknownFilter = errors.New("texture: unknown filter mode")

	// ErrFilterUnsupported is returned by resources whose sampling state
	// is owned by the host application.
	ErrFilterUnsupported = errors.New("texture: filter selection not supported")

	// ErrResourceNotAvailable is returned when no registered resource kind
	// can be constructed.
	ErrResourceNotAvailable = errors.New("texture: no resource available")
)

// FilterMode selects how the texture is sampled when drawn at a size other
// than its own.
type FilterMode int

const (
	// FilterNearest snaps to the closest texel. Magnified tilings show
	// hard-edged pixels.
	FilterNearest FilterMode = iota

	// FilterLinear blends the closest texels. Magnified tilings show
	// smoothed edges.
	FilterLinear
)

// String returns the lowercase filter name.
func (m FilterMode) String() string {
	switch m {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseFilterMode maps a filter name to its mode. Accepts the String forms.
func ParseFilterMode(s string) (FilterMode, error) {
	switch s {
	case "nearest":
		return FilterNearest, nil
	case "linear":
		return FilterLinear, nil
	default:
		return 0, ErrUnknownFilter
	}
}

// Resource is storage for one tiling texture.
//
// Upload replaces the stored pixels with a full grid; implementations copy
// or transfer the data before returning, so the caller may reuse the
// pixmap. SetFilter flips sampling between nearest and linear. A closed
// resource rejects everything with ErrResourceClosed.
type Resource interface {
	// Upload replaces the texture contents with pm, resizing storage when
	// the dimensions differ from the previous upload.
	Upload(pm *poincare.Pixmap) error

	// SetFilter selects the sampling mode for subsequent draws.
	SetFilter(m FilterMode) error

	// Filter returns the current sampling mode.
	Filter() FilterMode

	// Size returns the dimensions of the last upload, or zeros before the
	// first one.
	Size() (width, height int)

	// Close releases the underlying storage. Close is idempotent.
	Close() error
}
