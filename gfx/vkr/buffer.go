// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
)

func bufferUsageFlags(typ gfx.BufferType) vk.BufferUsageFlags {
	switch typ {
	case gfx.IndexBufferType:
		return vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit)
	case gfx.UniformBufferType:
		return vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit)
	default:
		return vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit)
	}
}

// buffer is the vulkan implementation of gfx.AbstractBuffer. It owns a
// vk.Buffer and its backing allocation, made from a host-visible and
// coherent memory type so that Fill and Map work without staging copies.
type buffer struct {
	object[vk.Buffer]

	memory *DeviceMemory
	size   int
}

func newBuffer(device *Device, typ gfx.BufferType, size int, usage gfx.BufferUsage) (gfx.AbstractBuffer, error) {
	buf := &buffer{size: size}
	err := buf.create(device, "vk.CreateBuffer", func(dev vk.Device) (vk.Buffer, vk.Result) {
		createInfo := vk.BufferCreateInfo{
			SType:       vk.StructureTypeBufferCreateInfo,
			Size:        vk.DeviceSize(size),
			Usage:       bufferUsageFlags(typ),
			SharingMode: vk.SharingModeExclusive,
		}
		var handle vk.Buffer
		result := vk.CreateBuffer(dev, &createInfo, nil, &handle)
		return handle, result
	})
	if err != nil {
		return nil, err
	}

	var requirements vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(device.Handle(), buf.handle, &requirements)
	requirements.Deref()

	properties := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	memory, err := NewDeviceMemoryFor(device, requirements.Size, requirements.MemoryTypeBits, properties)
	if err != nil {
		buf.destroy(func(dev vk.Device, handle vk.Buffer) {
			vk.DestroyBuffer(dev, handle, nil)
		})
		return nil, err
	}

	if result := vk.BindBufferMemory(device.Handle(), buf.handle, memory.Handle(), 0); result != vk.Success {
		memory.Release()
		buf.destroy(func(dev vk.Device, handle vk.Buffer) {
			vk.DestroyBuffer(dev, handle, nil)
		})
		return nil, nativeError("vk.BindBufferMemory", result)
	}

	buf.memory = memory
	return buf, nil
}

// Fill implements gfx.AbstractBuffer. The buffer memory is coherent, so
// a map-copy-unmap round trip is all that is needed; forceDiscard has no
// effect on this backend because the write never stalls the device.
func (b *buffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if !b.IsValid() {
		return gfx.ErrInvalidBuffer
	}
	if offset < 0 || offset+len(data) > b.size {
		return gfx.ErrOutOfBounds
	}
	if err := b.memory.Map(vk.DeviceSize(offset), vk.DeviceSize(len(data))); err != nil {
		return err
	}
	copy(b.memory.MappedBytes(), data)
	return b.memory.Unmap()
}

// Map implements gfx.AbstractBuffer.
func (b *buffer) Map(access gfx.BufferAccess, offset, size int) ([]byte, error) {
	if !b.IsValid() {
		return nil, gfx.ErrInvalidBuffer
	}
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, gfx.ErrOutOfBounds
	}
	if err := b.memory.Map(vk.DeviceSize(offset), vk.DeviceSize(size)); err != nil {
		if err == ErrMemoryMapped {
			return nil, gfx.ErrAlreadyMapped
		}
		return nil, err
	}
	return b.memory.MappedBytes(), nil
}

// Unmap implements gfx.AbstractBuffer.
func (b *buffer) Unmap() error {
	if !b.IsValid() {
		return gfx.ErrInvalidBuffer
	}
	if err := b.memory.Unmap(); err != nil {
		if err == ErrMemoryNotMapped {
			return gfx.ErrNotMapped
		}
		return err
	}
	return nil
}

// Storage implements gfx.AbstractBuffer.
func (b *buffer) Storage() gfx.DataStorage {
	return gfx.HardwareStorage
}

// Release implements gfx.AbstractBuffer. Idempotent.
func (b *buffer) Release() {
	b.destroy(func(dev vk.Device, handle vk.Buffer) {
		vk.DestroyBuffer(dev, handle, nil)
	})
	if b.memory != nil {
		b.memory.Release()
		b.memory = nil
	}
}
