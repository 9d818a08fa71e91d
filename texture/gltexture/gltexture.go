// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gltexture provides an OpenGL-backed texture resource.
//
// OpenGL calls require a current context, which only the host window loop
// can provide. The package therefore registers a factory that yields nil
// until the host calls Activate after making its context current. Storage
// is allocated lazily on first Upload.
package gltexture

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/poincare"
	"github.com/gogpu/poincare/texture"
)

// active reports whether a GL context is current on some thread.
var active atomic.Bool

// init registers the GL resource on package import. The factory returns
// nil until Activate is called, so Default skips this kind in headless
// environments.
func init() {
	texture.Register(texture.ResourceGL, func() texture.Resource {
		if !active.Load() {
			return nil
		}
		return &Resource{}
	})
}

// Activate marks the GL resource kind available. Call it after the host
// has made a context current and initialized the bindings with gl.Init.
func Activate() {
	active.Store(true)
}

// Deactivate marks the GL resource kind unavailable again, typically when
// the host window is torn down.
func Deactivate() {
	active.Store(false)
}

// Resource is a texture resource backed by an OpenGL texture object.
// All methods that touch GL state must run on the thread that owns the
// context.
type Resource struct {
	tex    uint32
	filter texture.FilterMode
	width  int
	height int
	closed bool
}

// NewResource creates a GL texture resource. No GL calls are made until
// the first Upload.
func NewResource() *Resource {
	return &Resource{}
}

// Name returns the resource identifier.
func (r *Resource) Name() string {
	return texture.ResourceGL
}

// ID returns the OpenGL texture object name, or zero before the first
// Upload.
func (r *Resource) ID() uint32 {
	return r.tex
}

// Upload replaces the texture contents with pm. The full image is
// transferred each time; GL reallocates storage when the size changes.
func (r *Resource) Upload(pm *poincare.Pixmap) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	if pm == nil {
		return texture.ErrNilPixmap
	}

	if r.tex == 0 {
		gl.GenTextures(1, &r.tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(r.filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(r.filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(pm.Width()), int32(pm.Height()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pm.Data()))

	r.width = pm.Width()
	r.height = pm.Height()
	return nil
}

// SetFilter switches sampling between nearest and linear. Pixel data is
// untouched; only the sampler parameters change.
func (r *Resource) SetFilter(m texture.FilterMode) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	if m != texture.FilterNearest && m != texture.FilterLinear {
		return fmt.Errorf("%w: %d", texture.ErrUnknownFilter, int(m))
	}
	r.filter = m
	if r.tex != 0 {
		gl.BindTexture(gl.TEXTURE_2D, r.tex)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(m))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(m))
	}
	return nil
}

// Filter returns the current sampling mode.
func (r *Resource) Filter() texture.FilterMode {
	return r.filter
}

// Size returns the dimensions of the last upload.
func (r *Resource) Size() (width, height int) {
	return r.width, r.height
}

// Bind makes the texture current on the given texture unit.
func (r *Resource) Bind(unit uint32) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	if r.tex == 0 {
		return texture.ErrNoUpload
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	return nil
}

// Close deletes the GL texture object. Close is idempotent.
func (r *Resource) Close() error {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
		r.tex = 0
	}
	r.width = 0
	r.height = 0
	r.closed = true
	return nil
}

func glFilter(m texture.FilterMode) int32 {
	if m == texture.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}
