// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the engine's in-memory mesh representation and
// importers for it.
package model

import (
	"unsafe"

	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Object represents the engine supported model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Vertices returns the vertices for Renderer use,
	// so it has to match the descriptors exactly
	Vertices() []Vertex
}

// Vertex is a model vertex
type Vertex struct {
	Pos    glm.Vec3
	Normal glm.Vec3
	Color  glm.Vec4
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// Declaration returns the engine vertex declaration matching Vertex.
func Declaration() (*gfx.VertexDeclaration, error) {
	return gfx.NewVertexDeclaration(gfx.PerVertexInputRate,
		gfx.Component{Component: gfx.PositionComponent, Type: gfx.Float3, Offset: int(unsafe.Offsetof(Vertex{}.Pos))},
		gfx.Component{Component: gfx.NormalComponent, Type: gfx.Float3, Offset: int(unsafe.Offsetof(Vertex{}.Normal))},
		gfx.Component{Component: gfx.ColorComponent, Type: gfx.Float4, Offset: int(unsafe.Offsetof(Vertex{}.Color))},
	)
}

// VertexBytes reslices vertices into the raw bytes a buffer Fill expects.
func VertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	size := len(vertices) * int(unsafe.Sizeof(Vertex{}))
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), size)
}

// VertexBindingDescriptions return Vulkan Vertex descriptors
func VertexBindingDescriptions() []vk.VertexInputBindingDescription {
	return []vk.VertexInputBindingDescription{{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}}
}

// VertexAttributeDescriptions return Vulkan attribute descriptors
func VertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Binding:  0,
			Location: 0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Binding:  0,
			Location: 1,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Normal)),
		},
		{
			Binding:  0,
			Location: 2,
			Format:   vk.FormatR32g32b32a32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
	}
}
