// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"errors"
	"testing"

	"github.com/gogpu/poincare"
)

func TestFilterModeString(t *testing.T) {
	tests := []struct {
		mode FilterMode
		want string
	}{
		{FilterNearest, "nearest"},
		{FilterLinear, "linear"},
		{FilterMode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("FilterMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestParseFilterMode(t *testing.T) {
	m, err := ParseFilterMode("nearest")
	if err != nil || m != FilterNearest {
		t.Errorf("ParseFilterMode(nearest) = %v, %v", m, err)
	}
	m, err = ParseFilterMode("linear")
	if err != nil || m != FilterLinear {
		t.Errorf("ParseFilterMode(linear) = %v, %v", m, err)
	}
	if _, err := ParseFilterMode("cubic"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("ParseFilterMode(cubic) error = %v, want ErrUnknownFilter", err)
	}
}

func TestSoftwareResourceName(t *testing.T) {
	r := NewSoftwareResource()
	if r.Name() != "software" {
		t.Errorf("Name() = %q, want %q", r.Name(), "software")
	}
}

func TestSoftwareResourceUpload(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	pm := poincare.NewPixmap(4, 3)
	pm.Clear(poincare.Yellow)
	if err := r.Upload(pm); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	w, h := r.Size()
	if w != 4 || h != 3 {
		t.Errorf("Size() = %dx%d, want 4x3", w, h)
	}

	snap, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !snap.Equal(pm) {
		t.Error("Snapshot() differs from uploaded pixmap")
	}

	// The resource keeps its own copy: mutating the source afterwards
	// must not leak into the stored texture.
	pm.SetPixel(0, 0, poincare.Red)
	snap2, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got := snap2.GetPixel(0, 0); got == (poincare.RGBA{R: 1, G: 0, B: 0, A: 1}) {
		t.Error("Upload() aliased the caller's pixmap instead of copying")
	}
}

func TestSoftwareResourceUploadNil(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if err := r.Upload(nil); !errors.Is(err, ErrNilPixmap) {
		t.Errorf("Upload(nil) error = %v, want ErrNilPixmap", err)
	}
}

func TestSoftwareResourceUploadReplaces(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	first := poincare.NewPixmap(2, 2)
	first.Clear(poincare.Blue)
	if err := r.Upload(first); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	second := poincare.NewPixmap(3, 1)
	second.Clear(poincare.Yellow)
	if err := r.Upload(second); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	w, h := r.Size()
	if w != 3 || h != 1 {
		t.Errorf("Size() after replace = %dx%d, want 3x1", w, h)
	}
	snap, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !snap.Equal(second) {
		t.Error("Snapshot() after replace should match second upload")
	}
}

func TestSoftwareResourceFilter(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if r.Filter() != FilterNearest {
		t.Errorf("default Filter() = %v, want FilterNearest", r.Filter())
	}
	if err := r.SetFilter(FilterLinear); err != nil {
		t.Fatalf("SetFilter(FilterLinear) error = %v", err)
	}
	if r.Filter() != FilterLinear {
		t.Errorf("Filter() = %v, want FilterLinear", r.Filter())
	}
	if err := r.SetFilter(FilterMode(7)); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("SetFilter(7) error = %v, want ErrUnknownFilter", err)
	}
	// Failed SetFilter leaves the mode untouched.
	if r.Filter() != FilterLinear {
		t.Errorf("Filter() after invalid set = %v, want FilterLinear", r.Filter())
	}
}

func TestSoftwareResourceSnapshotBeforeUpload(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if _, err := r.Snapshot(); !errors.Is(err, ErrNoUpload) {
		t.Errorf("Snapshot() before upload error = %v, want ErrNoUpload", err)
	}
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("Size() before upload = %dx%d, want 0x0", w, h)
	}
}

// twoTexelPixmap returns a 2x1 pixmap with a black and a white texel, the
// smallest input on which nearest and linear sampling visibly disagree.
func twoTexelPixmap() *poincare.Pixmap {
	pm := poincare.NewPixmap(2, 1)
	pm.SetPixel(0, 0, poincare.Black)
	pm.SetPixel(1, 0, poincare.White)
	return pm
}

func TestSoftwareResourceScaleNearest(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if err := r.Upload(twoTexelPixmap()); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	out, err := r.Scale(4, 1)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if out.Width() != 4 || out.Height() != 1 {
		t.Fatalf("Scale() size = %dx%d, want 4x1", out.Width(), out.Height())
	}

	// Nearest sampling duplicates texels without inventing new colors.
	for x := 0; x < 4; x++ {
		got := out.GetPixel(x, 0)
		if got.R != got.G || got.G != got.B || (got.R != 0 && got.R != 1) {
			t.Errorf("pixel %d = %+v, want pure black or white", x, got)
		}
	}
	if out.GetPixel(0, 0).R != 0 || out.GetPixel(3, 0).R != 1 {
		t.Error("Scale() with nearest filter reordered the texels")
	}
}

func TestSoftwareResourceScaleLinear(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if err := r.Upload(twoTexelPixmap()); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	nearest, err := r.Scale(8, 1)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}

	if err := r.SetFilter(FilterLinear); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	linear, err := r.Scale(8, 1)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}

	if linear.Equal(nearest) {
		t.Error("linear and nearest upscales should differ")
	}

	// Linear sampling blends across the texel seam.
	blended := false
	for x := 0; x < 8; x++ {
		c := linear.GetPixel(x, 0)
		if c.R > 0 && c.R < 1 {
			blended = true
			break
		}
	}
	if !blended {
		t.Error("linear upscale produced no intermediate values")
	}
}

func TestSoftwareResourceScaleErrors(t *testing.T) {
	r := NewSoftwareResource()
	defer r.Close()

	if _, err := r.Scale(4, 4); !errors.Is(err, ErrNoUpload) {
		t.Errorf("Scale() before upload error = %v, want ErrNoUpload", err)
	}

	if err := r.Upload(twoTexelPixmap()); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if _, err := r.Scale(0, 4); !errors.Is(err, poincare.ErrInvalidSize) {
		t.Errorf("Scale(0, 4) error = %v, want ErrInvalidSize", err)
	}
	if _, err := r.Scale(4, -1); !errors.Is(err, poincare.ErrInvalidSize) {
		t.Errorf("Scale(4, -1) error = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareResourceClose(t *testing.T) {
	r := NewSoftwareResource()
	if err := r.Upload(twoTexelPixmap()); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Close is idempotent.
	if err := r.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	if err := r.Upload(twoTexelPixmap()); !errors.Is(err, ErrResourceClosed) {
		t.Errorf("Upload() after close error = %v, want ErrResourceClosed", err)
	}
	if err := r.SetFilter(FilterLinear); !errors.Is(err, ErrResourceClosed) {
		t.Errorf("SetFilter() after close error = %v, want ErrResourceClosed", err)
	}
	if _, err := r.Snapshot(); !errors.Is(err, ErrResourceClosed) {
		t.Errorf("Snapshot() after close error = %v, want ErrResourceClosed", err)
	}
	if _, err := r.Scale(2, 2); !errors.Is(err, ErrResourceClosed) {
		t.Errorf("Scale() after close error = %v, want ErrResourceClosed", err)
	}
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("Size() after close = %dx%d, want 0x0", w, h)
	}
}

// fakeResource is a minimal Resource for registry tests.
type fakeResource struct {
	filter FilterMode
}

func (f *fakeResource) Upload(pm *poincare.Pixmap) error { return nil }
func (f *fakeResource) SetFilter(m FilterMode) error     { f.filter = m; return nil }
func (f *fakeResource) Filter() FilterMode               { return f.filter }
func (f *fakeResource) Size() (int, int)                 { return 0, 0 }
func (f *fakeResource) Close() error                     { return nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software resource is auto-registered via init()
	if !IsRegistered(ResourceSoftware) {
		t.Error("software resource should be auto-registered")
	}

	r := Get(ResourceSoftware)
	if r == nil {
		t.Fatal("Get(software) returned nil")
	}
	if _, ok := r.(*SoftwareResource); !ok {
		t.Errorf("Get(software) = %T, want *SoftwareResource", r)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if r := Get("nonexistent"); r != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	found := false
	for _, name := range available {
		if name == ResourceSoftware {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryDefault(t *testing.T) {
	r := Default()
	if r == nil {
		t.Fatal("Default() returned nil")
	}
	if _, ok := r.(*SoftwareResource); !ok {
		t.Logf("Default() returned %T (may vary based on available resources)", r)
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	fake := &fakeResource{}
	Register(ResourceWGPU, func() Resource { return fake })
	defer Unregister(ResourceWGPU)

	if r := Default(); r != Resource(fake) {
		t.Errorf("Default() = %T, want the registered wgpu fake", r)
	}
}

func TestRegistryDefaultSkipsUnavailable(t *testing.T) {
	// A factory returning nil means "registered but cannot run here";
	// Default must fall through to the next kind in priority order.
	Register(ResourceWGPU, func() Resource { return nil })
	defer Unregister(ResourceWGPU)

	r := Default()
	if r == nil {
		t.Fatal("Default() returned nil despite software fallback")
	}
	if _, ok := r.(*SoftwareResource); !ok {
		t.Errorf("Default() = %T, want *SoftwareResource fallback", r)
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if r := MustDefault(); r == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryOpenDefault(t *testing.T) {
	r, err := OpenDefault()
	if err != nil {
		t.Fatalf("OpenDefault() error = %v", err)
	}
	if r == nil {
		t.Fatal("OpenDefault() returned nil resource")
	}
	defer r.Close()

	if err := r.Upload(twoTexelPixmap()); err != nil {
		t.Errorf("resource from OpenDefault() should be usable: %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-resource", func() Resource {
		return &fakeResource{}
	})

	if !IsRegistered("test-resource") {
		t.Error("test-resource should be registered")
	}

	Unregister("test-resource")

	if IsRegistered("test-resource") {
		t.Error("test-resource should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !IsRegistered(ResourceSoftware) {
		t.Error("software should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

// Benchmark tests

func BenchmarkSoftwareResourceUpload(b *testing.B) {
	r := NewSoftwareResource()
	defer r.Close()

	pm := poincare.NewPixmap(300, 300)
	pm.Clear(poincare.Blue)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Upload(pm)
	}
}

func BenchmarkSoftwareResourceScale(b *testing.B) {
	r := NewSoftwareResource()
	defer r.Close()

	pm := poincare.NewPixmap(300, 300)
	pm.Clear(poincare.Blue)
	_ = r.Upload(pm)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Scale(600, 600)
	}
}
