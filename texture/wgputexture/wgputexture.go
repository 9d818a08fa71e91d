// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package wgputexture provides texture resources backed by the wgpu stack.
//
// Two resource flavors live here. Resource bootstraps its own hal device
// and owns the texture, view, and samplers outright; it is what the
// registry hands out when a GPU adapter is present. ProviderResource
// instead borrows a device from a gpucontext host and lets the host's
// pipeline do the drawing, which is the right shape when embedding the
// tiling inside a larger gogpu application.
package wgputexture

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/poincare"
	"github.com/gogpu/poincare/texture"
)

// init registers the wgpu resource on package import. The factory probes
// for a usable adapter; when none is found it returns nil so Default
// falls through to the next resource kind.
func init() {
	texture.Register(texture.ResourceWGPU, func() texture.Resource {
		r, err := NewResource()
		if err != nil {
			poincare.Logger().Debug("wgpu texture resource unavailable", "error", err)
			return nil
		}
		return r
	})
}

// Resource is a texture resource that owns a hal device, texture, and
// sampler pair. Uploading a pixmap of a new size drops the old texture
// and allocates a fresh one; same-size uploads rewrite the pixels in
// place.
type Resource struct {
	instance   hal.Instance
	device     hal.Device
	queue      hal.Queue
	ownsDevice bool

	tex  hal.Texture
	view hal.TextureView

	samplerNearest hal.Sampler
	samplerLinear  hal.Sampler

	filter texture.FilterMode
	width  int
	height int
	closed bool
}

// NewResource opens the first usable GPU adapter and builds a resource on
// it. The returned resource owns the device and releases it on Close.
func NewResource() (*Resource, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgputexture: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgputexture: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("wgputexture: no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgputexture: open device: %w", err)
	}

	r, err := NewResourceWithDevice(openDev.Device, openDev.Queue)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	r.instance = instance
	r.ownsDevice = true
	poincare.Logger().Debug("wgpu texture resource ready", "adapter", selected.Info.Name)
	return r, nil
}

// NewResourceWithDevice builds a resource on a device the caller already
// owns. Close releases the texture and samplers but leaves the device
// alone.
func NewResourceWithDevice(device hal.Device, queue hal.Queue) (*Resource, error) {
	// Sampler filter fields left zero select nearest filtering.
	nearest, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "tiling_sampler_nearest",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
	})
	if err != nil {
		return nil, fmt.Errorf("wgputexture: create nearest sampler: %w", err)
	}
	linear, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "tiling_sampler_linear",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	})
	if err != nil {
		device.DestroySampler(nearest)
		return nil, fmt.Errorf("wgputexture: create linear sampler: %w", err)
	}

	return &Resource{
		device:         device,
		queue:          queue,
		samplerNearest: nearest,
		samplerLinear:  linear,
	}, nil
}

// Name returns the resource identifier.
func (r *Resource) Name() string {
	return texture.ResourceWGPU
}

// Upload replaces the texture contents with pm. A size change recreates
// the texture and its view; otherwise the pixels are rewritten in place.
func (r *Resource) Upload(pm *poincare.Pixmap) error {
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

	if r.tex == nil || r.width != w || r.height != h {
		if err := r.recreateTexture(w, h); err != nil {
			return err
		}
	}

	uw := uint32(w) //nolint:gosec // dimensions validated positive above
	uh := uint32(h) //nolint:gosec // dimensions validated positive above
	r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  r.tex,
			MipLevel: 0,
		},
		pm.Data(),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uw * 4,
			RowsPerImage: uh,
		},
		&hal.Extent3D{Width: uw, Height: uh, DepthOrArrayLayers: 1},
	)
	return nil
}

func (r *Resource) recreateTexture(w, h int) error {
	r.releaseTexture()

	uw := uint32(w) //nolint:gosec // caller validates dimensions
	uh := uint32(h) //nolint:gosec // caller validates dimensions
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "tiling_texture",
		Size:          hal.Extent3D{Width: uw, Height: uh, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgputexture: create texture: %w", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "tiling_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return fmt.Errorf("wgputexture: create texture view: %w", err)
	}

	r.tex = tex
	r.view = view
	r.width = w
	r.height = h
	return nil
}

func (r *Resource) releaseTexture() {
	if r.view != nil {
		r.device.DestroyTextureView(r.view)
		r.view = nil
	}
	if r.tex != nil {
		r.device.DestroyTexture(r.tex)
		r.tex = nil
	}
	r.width = 0
	r.height = 0
}

// SetFilter selects which of the two samplers Sampler returns.
func (r *Resource) SetFilter(m texture.FilterMode) error {
	if r.closed {
		return texture.ErrResourceClosed
	}
	if m != texture.FilterNearest && m != texture.FilterLinear {
		return fmt.Errorf("%w: %d", texture.ErrUnknownFilter, int(m))
	}
	r.filter = m
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

// View returns the texture view for binding, or nil before the first
// Upload.
func (r *Resource) View() hal.TextureView {
	return r.view
}

// Sampler returns the sampler matching the current filter mode.
func (r *Resource) Sampler() hal.Sampler {
	if r.filter == texture.FilterLinear {
		return r.samplerLinear
	}
	return r.samplerNearest
}

// Close releases the texture, view, and samplers, plus the device and
// instance when this resource bootstrapped them. Close is idempotent.
func (r *Resource) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	r.releaseTexture()
	if r.samplerNearest != nil {
		r.device.DestroySampler(r.samplerNearest)
		r.samplerNearest = nil
	}
	if r.samplerLinear != nil {
		r.device.DestroySampler(r.samplerLinear)
		r.samplerLinear = nil
	}
	if r.ownsDevice {
		if r.device != nil {
			r.device.Destroy()
		}
		if r.instance != nil {
			r.instance.Destroy()
		}
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
	return nil
}
