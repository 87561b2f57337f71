// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"unsafe"

	vk "github.com/devblok/vulkan"
)

// memoryType is the extracted, cgo-free view of one entry in the
// physical device memory type table.
type memoryType struct {
	propertyFlags vk.MemoryPropertyFlags
	heapIndex     uint32
}

func readMemoryTypes(physicalDevice vk.PhysicalDevice) []memoryType {
	var props vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(physicalDevice, &props)
	props.Deref()

	types := make([]memoryType, props.MemoryTypeCount)
	for idx := range types {
		props.MemoryTypes[idx].Deref()
		types[idx] = memoryType{
			propertyFlags: props.MemoryTypes[idx].PropertyFlags,
			heapIndex:     props.MemoryTypes[idx].HeapIndex,
		}
	}
	return types
}

// findMemoryType selects the first memory type allowed by typeBits that
// carries all the wanted property flags.
func findMemoryType(types []memoryType, typeBits uint32, properties vk.MemoryPropertyFlags) (uint32, error) {
	for idx, memType := range types {
		if typeBits&(1<<uint32(idx)) == 0 {
			continue
		}
		if memType.propertyFlags&properties == properties {
			return uint32(idx), nil
		}
	}
	return 0, ErrNoSuitableMemoryType
}

// DeviceMemory wraps an allocation of device memory. While mapped it
// exposes the host pointer through MappedPointer.
type DeviceMemory struct {
	object[vk.DeviceMemory]

	size       vk.DeviceSize
	typeIndex  uint32
	hostFlags  vk.MemoryPropertyFlags
	mappedPtr  unsafe.Pointer
	mappedSize vk.DeviceSize
}

// NewDeviceMemory allocates size bytes from an explicit memory type index.
func NewDeviceMemory(device *Device, size vk.DeviceSize, typeIndex uint32) (*DeviceMemory, error) {
	if device == nil || !device.IsValid() {
		return nil, ErrInvalidDevice
	}
	if int(typeIndex) >= len(device.memoryTypes) {
		return nil, ErrNoSuitableMemoryType
	}

	memory := &DeviceMemory{
		size:      size,
		typeIndex: typeIndex,
		hostFlags: device.memoryTypes[typeIndex].propertyFlags,
	}
	err := memory.create(device, "vk.AllocateMemory", func(dev vk.Device) (vk.DeviceMemory, vk.Result) {
		allocInfo := vk.MemoryAllocateInfo{
			SType:           vk.StructureTypeMemoryAllocateInfo,
			AllocationSize:  size,
			MemoryTypeIndex: typeIndex,
		}
		var handle vk.DeviceMemory
		result := vk.AllocateMemory(dev, &allocInfo, nil, &handle)
		return handle, result
	})
	if err != nil {
		return nil, err
	}
	return memory, nil
}

// NewDeviceMemoryFor allocates size bytes from the first memory type
// permitted by typeBits that has all the requested properties. typeBits
// normally comes out of vk.MemoryRequirements.
func NewDeviceMemoryFor(device *Device, size vk.DeviceSize, typeBits uint32, properties vk.MemoryPropertyFlags) (*DeviceMemory, error) {
	if device == nil || !device.IsValid() {
		return nil, ErrInvalidDevice
	}
	typeIndex, err := findMemoryType(device.memoryTypes, typeBits, properties)
	if err != nil {
		return nil, err
	}
	return NewDeviceMemory(device, size, typeIndex)
}

// Size returns the size of the allocation in bytes.
func (m *DeviceMemory) Size() vk.DeviceSize {
	return m.size
}

// TypeIndex returns the memory type index the allocation came from.
func (m *DeviceMemory) TypeIndex() uint32 {
	return m.typeIndex
}

// IsHostVisible reports whether the memory can be mapped.
func (m *DeviceMemory) IsHostVisible() bool {
	return m.hostFlags&vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit) != 0
}

// Map maps a window of the allocation into host memory. Only one window
// may be outstanding at a time.
func (m *DeviceMemory) Map(offset, size vk.DeviceSize) error {
	if !m.IsValid() {
		return ErrInvalidDevice
	}
	if !m.IsHostVisible() {
		return ErrNotHostVisible
	}
	if m.mappedPtr != nil {
		return ErrMemoryMapped
	}

	var ptr unsafe.Pointer
	if result := vk.MapMemory(m.device.Handle(), m.handle, offset, size, 0, &ptr); result != vk.Success {
		m.lastResult = result
		return nativeError("vk.MapMemory", result)
	}
	m.mappedPtr = ptr
	m.mappedSize = size
	return nil
}

// MappedPointer returns the host pointer of the current mapping, nil
// when nothing is mapped.
func (m *DeviceMemory) MappedPointer() unsafe.Pointer {
	return m.mappedPtr
}

// MappedBytes returns the current mapping as a byte slice.
func (m *DeviceMemory) MappedBytes() []byte {
	if m.mappedPtr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(m.mappedPtr), int(m.mappedSize))
}

// FlushRange flushes a mapped range to the device. Needed only for
// memory without the host coherent property.
func (m *DeviceMemory) FlushRange(offset, size vk.DeviceSize) error {
	if m.mappedPtr == nil {
		return ErrMemoryNotMapped
	}
	ranges := []vk.MappedMemoryRange{{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: m.handle,
		Offset: offset,
		Size:   size,
	}}
	if result := vk.FlushMappedMemoryRanges(m.device.Handle(), 1, ranges); result != vk.Success {
		m.lastResult = result
		return nativeError("vk.FlushMappedMemoryRanges", result)
	}
	return nil
}

// Unmap releases the current mapping.
func (m *DeviceMemory) Unmap() error {
	if m.mappedPtr == nil {
		return ErrMemoryNotMapped
	}
	vk.UnmapMemory(m.device.Handle(), m.handle)
	m.mappedPtr = nil
	m.mappedSize = 0
	return nil
}

// Release unmaps and frees the allocation. Idempotent.
func (m *DeviceMemory) Release() {
	if m.mappedPtr != nil {
		vk.UnmapMemory(m.device.Handle(), m.handle)
		m.mappedPtr = nil
		m.mappedSize = 0
	}
	m.destroy(func(dev vk.Device, handle vk.DeviceMemory) {
		vk.FreeMemory(dev, handle, nil)
	})
}
