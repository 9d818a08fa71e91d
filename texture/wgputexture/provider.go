// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgputexture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/poincare"
	"github.com/gogpu/poincare/texture"
)

// ProviderResource errors.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("wgputexture: nil DeviceProvider")

	// ErrInvalidRenderer is returned when the draw context exposes no
	// texture creator.
	ErrInvalidRenderer = errors.New("wgputexture: drawer has no texture creator")

	// ErrInvalidTexture is returned when the host's texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("wgputexture: host texture does not implement gpucontext.Texture")
)

// textureDestroyer is the interface for destroying host textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// ProviderResource is a texture resource that borrows the GPU device of a
// gpucontext host application. The host's pipeline owns drawing and
// sampling; this resource only manages the texture holding the tiling.
//
// Texture creation needs the host's draw context, which is only reachable
// inside the frame callback. Upload therefore stages pixels CPU-side and
// Draw materializes them on first use. ProviderResource is not registered
// with the resource registry because it cannot exist without a host.
//
// ProviderResource is NOT safe for concurrent use.
type ProviderResource struct {
	provider gpucontext.DeviceProvider

	pending    *poincare.Pixmap
	tex        any // host texture, created lazily in Draw
	oldTexture any // previous texture awaiting deferred destruction

	width  int
	height int
	closed bool
}

// NewProviderResource creates a resource bound to the host's device
// provider. The provider should come from gogpu.App.GPUContextProvider().
func NewProviderResource(provider gpucontext.DeviceProvider) (*ProviderResource, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &ProviderResource{provider: provider}, nil
}

// Name returns the resource identifier.
func (r *ProviderResource) Name() string {
	return texture.ResourceWGPU
}

// Upload stages pm for the next Draw. When a host texture of matching
// size already exists and supports in-place updates, the pixels are
// written immediately instead.
func (r *ProviderResource) Upload(pm *poincare.Pixmap) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	if pm == nil {
		return texture.ErrNilPixmap
	}
	w, h := pm.Width(), pm.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", poincare.ErrInvalidSize, w, h)
	}

	clone := pm.Clone()

	if r.tex != nil && r.width == w && r.height == h {
		if updater, ok := r.tex.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(clone.Data()); err != nil {
				return fmt.Errorf("wgputexture: texture update failed: %w", err)
			}
			r.pending = nil
			return nil
		}
	}

	// Size changed (or the host texture cannot update in place): the old
	// texture may still be referenced by in-flight GPU command buffers,
	// so keep it alive until Draw has uploaded the replacement.
	if r.tex != nil {
		if r.oldTexture != nil {
			if destroyer, ok := r.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
		}
		r.oldTexture = r.tex
		r.tex = nil
	}

	r.pending = clone
	r.width = w
	r.height = h
	return nil
}

// Draw uploads any staged pixels and draws the texture at (x, y) through
// the host's draw context.
func (r *ProviderResource) Draw(dc gpucontext.TextureDrawer, x, y float32) error {
	if r.closed {
		return texture.ErrResourceClosed
	}

	if r.pending != nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA waits for the GPU internally, so once it
		// returns the old texture is no longer in use and can be freed.
		realTex, err := creator.NewTextureFromRGBA(r.pending.Width(), r.pending.Height(), r.pending.Data())
		if err != nil {
			return fmt.Errorf("wgputexture: NewTextureFromRGBA failed: %w", err)
		}
		if r.oldTexture != nil {
			if destroyer, ok := r.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			r.oldTexture = nil
		}
		r.tex = realTex
		r.pending = nil
	}

	if r.tex == nil {
		return texture.ErrNoUpload
	}
	gpuTex, ok := r.tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// SetFilter is not supported: the host pipeline owns the sampler.
func (r *ProviderResource) SetFilter(m texture.FilterMode) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	return texture.ErrFilterUnsupported
}

// Filter reports the nominal sampling mode. The host pipeline decides how
// the texture is actually sampled.
func (r *ProviderResource) Filter() texture.FilterMode {
	return texture.FilterNearest
}

// Size returns the dimensions of the last upload.
func (r *ProviderResource) Size() (width, height int) {
	return r.width, r.height
}

// Provider returns the DeviceProvider this resource is bound to.
// Returns nil after Close.
func (r *ProviderResource) Provider() gpucontext.DeviceProvider {
	if r.closed {
		return nil
	}
	return r.provider
}

// Close destroys the host textures. Close is idempotent.
func (r *ProviderResource) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.oldTexture != nil {
		if destroyer, ok := r.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		r.oldTexture = nil
	}
	if r.tex != nil {
		if destroyer, ok := r.tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		r.tex = nil
	}
	r.pending = nil
	r.provider = nil
	return nil
}
