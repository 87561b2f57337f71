// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the backend-agnostic rendering resource layer.
// Buffers, textures and vertex declarations are created through this
// package; the concrete backend (Vulkan or OpenGL) is selected once at
// device creation time and stays opaque to callers afterwards.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	// Safe to call more than once.
	Release()
}

// DataStorage determines where the bytes of a buffer live.
type DataStorage int

// Supported storage locations
const (
	// SoftwareStorage keeps contents in system memory.
	SoftwareStorage DataStorage = iota

	// HardwareStorage keeps contents in device memory,
	// managed by the active backend.
	HardwareStorage
)

// BufferType declares what a buffer will be bound as.
type BufferType int

// Supported buffer types
const (
	VertexBufferType BufferType = iota
	IndexBufferType
	UniformBufferType
)

// BufferUsage hints how often buffer contents are expected to change.
type BufferUsage int

// Supported usage hints
const (
	StaticUsage BufferUsage = iota
	DynamicUsage
	StreamUsage
)

// BufferAccess declares the intent of a Map call.
type BufferAccess int

// Supported access modes
const (
	ReadOnlyAccess BufferAccess = iota
	WriteOnlyAccess
	ReadWriteAccess

	// DiscardAndWriteAccess lets the backend drop previous contents
	// instead of preserving unwritten regions.
	DiscardAndWriteAccess
)

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	GeometryShaderType
	ComputeShaderType
	UnknownShaderType
)

// Device is the backend selection boundary. A concrete backend implements
// it once per logical device or context; resources created through it
// belong to that backend until released. Implementations are not safe for
// concurrent use, all calls are expected on one rendering thread.
type Device interface {

	// NewBuffer allocates backend storage for a buffer of size bytes.
	NewBuffer(typ BufferType, size int, usage BufferUsage) (AbstractBuffer, error)

	// NewTexture allocates backend storage for a texture.
	NewTexture(info TextureInfo) (AbstractTexture, error)
}
