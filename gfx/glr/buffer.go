// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"unsafe"

	"github.com/515760058/NazaraEngine/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

func glBufferTarget(typ gfx.BufferType) uint32 {
	switch typ {
	case gfx.IndexBufferType:
		return gl.ELEMENT_ARRAY_BUFFER
	case gfx.UniformBufferType:
		return gl.UNIFORM_BUFFER
	default:
		return gl.ARRAY_BUFFER
	}
}

func glBufferUsage(usage gfx.BufferUsage) uint32 {
	switch usage {
	case gfx.DynamicUsage:
		return gl.DYNAMIC_DRAW
	case gfx.StreamUsage:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func glMapAccess(access gfx.BufferAccess) uint32 {
	switch access {
	case gfx.ReadOnlyAccess:
		return gl.MAP_READ_BIT
	case gfx.WriteOnlyAccess:
		return gl.MAP_WRITE_BIT
	case gfx.DiscardAndWriteAccess:
		return gl.MAP_WRITE_BIT | gl.MAP_INVALIDATE_RANGE_BIT
	default:
		return gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
	}
}

// buffer is the OpenGL implementation of gfx.AbstractBuffer.
type buffer struct {
	handle uint32
	target uint32
	usage  uint32
	size   int
	mapped bool
}

func newBuffer(typ gfx.BufferType, size int, usage gfx.BufferUsage) (gfx.AbstractBuffer, error) {
	buf := &buffer{
		target: glBufferTarget(typ),
		usage:  glBufferUsage(usage),
		size:   size,
	}
	gl.GenBuffers(1, &buf.handle)
	if buf.handle == 0 {
		return nil, ErrInvalidGLBuffer
	}
	gl.BindBuffer(buf.target, buf.handle)
	gl.BufferData(buf.target, size, nil, buf.usage)
	return buf, nil
}

// Fill implements gfx.AbstractBuffer. When forceDiscard is set the store
// is orphaned with a fresh BufferData allocation before the upload, so
// the driver never stalls on in-flight reads of the old contents.
func (b *buffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if b.handle == 0 {
		return gfx.ErrInvalidBuffer
	}
	if offset < 0 || offset+len(data) > b.size {
		return gfx.ErrOutOfBounds
	}
	gl.BindBuffer(b.target, b.handle)
	if forceDiscard {
		gl.BufferData(b.target, b.size, nil, b.usage)
	}
	if len(data) > 0 {
		gl.BufferSubData(b.target, offset, len(data), gl.Ptr(data))
	}
	return nil
}

// Map implements gfx.AbstractBuffer.
func (b *buffer) Map(access gfx.BufferAccess, offset, size int) ([]byte, error) {
	if b.handle == 0 {
		return nil, gfx.ErrInvalidBuffer
	}
	if b.mapped {
		return nil, gfx.ErrAlreadyMapped
	}
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, gfx.ErrOutOfBounds
	}
	gl.BindBuffer(b.target, b.handle)
	ptr := gl.MapBufferRange(b.target, offset, size, glMapAccess(access))
	if ptr == nil {
		return nil, gfx.ErrInvalidBuffer
	}
	b.mapped = true
	return unsafe.Slice((*byte)(ptr), size), nil
}

// Unmap implements gfx.AbstractBuffer.
func (b *buffer) Unmap() error {
	if b.handle == 0 {
		return gfx.ErrInvalidBuffer
	}
	if !b.mapped {
		return gfx.ErrNotMapped
	}
	gl.BindBuffer(b.target, b.handle)
	gl.UnmapBuffer(b.target)
	b.mapped = false
	return nil
}

// Storage implements gfx.AbstractBuffer.
func (b *buffer) Storage() gfx.DataStorage {
	return gfx.HardwareStorage
}

// Release implements gfx.AbstractBuffer. Idempotent.
func (b *buffer) Release() {
	if b.handle == 0 {
		return
	}
	if b.mapped {
		gl.BindBuffer(b.target, b.handle)
		gl.UnmapBuffer(b.target)
		b.mapped = false
	}
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
}
