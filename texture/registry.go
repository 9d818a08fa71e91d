// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"sync"
)

// Resource kind names used with Register and Get.
const (
	// ResourceSoftware is the CPU-side resource. Always available.
	ResourceSoftware = "software"

	// ResourceGL is the OpenGL-backed resource. Available once a GL
	// context has been activated.
	ResourceGL = "gl"

	// ResourceWGPU is the wgpu-backed resource. Available when a GPU
	// adapter can be opened.
	ResourceWGPU = "wgpu"
)

// Factory creates a new resource instance.
// A factory returns nil when its resource kind cannot run in the current
// environment, so registration alone does not imply availability.
type Factory func() Resource

// registry holds registered resource kinds.
var (
	registryMu sync.RWMutex
	resources  = make(map[string]Factory)
	// Priority order for resource selection (first available wins).
	// wgpu > gl > software (software is the fallback).
	resourcePriority = []string{ResourceWGPU, ResourceGL, ResourceSoftware}
)

// Register registers a resource factory with the given name.
// This is typically called from init() functions in resource packages.
// If a resource with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	resources[name] = factory
}

// Unregister removes a resource kind from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(resources, name)
}

// Available returns a list of registered resource names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a resource kind with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := resources[name]
	return ok
}

// Get returns a resource instance by name.
// Returns nil if the kind is not registered or cannot be constructed.
func Get(name string) Resource {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := resources[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available resource based on priority.
// Priority order: wgpu > gl > software.
// Returns nil if no resource can be constructed.
func Default() Resource {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range resourcePriority {
		if factory, ok := resources[name]; ok {
			r := factory()
			if r != nil {
				return r
			}
		}
	}

	// Fallback: return first available
	for _, factory := range resources {
		if r := factory(); r != nil {
			return r
		}
	}

	return nil
}

// MustDefault returns the default resource or panics.
func MustDefault() Resource {
	r := Default()
	if r == nil {
		panic("texture: no resource available")
	}
	return r
}

// OpenDefault returns the best available resource, or
// ErrResourceNotAvailable when none can be constructed.
func OpenDefault() (Resource, error) {
	r := Default()
	if r == nil {
		return nil, ErrResourceNotAvailable
	}
	return r, nil
}
