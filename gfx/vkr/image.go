// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
)

// Image wraps a vulkan image. Memory is bound separately with BindMemory,
// which may happen at most once over the image's lifetime.
type Image struct {
	object[vk.Image]

	memory *DeviceMemory
	bound  bool
}

// NewImage creates an image from the given create info.
func NewImage(device *Device, createInfo vk.ImageCreateInfo) (*Image, error) {
	image := &Image{}
	err := image.create(device, "vk.CreateImage", func(dev vk.Device) (vk.Image, vk.Result) {
		var handle vk.Image
		result := vk.CreateImage(dev, &createInfo, nil, &handle)
		return handle, result
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}

// MemoryRequirements queries the size, alignment and allowed memory
// types for the image.
func (i *Image) MemoryRequirements() (vk.MemoryRequirements, error) {
	if !i.IsValid() {
		return vk.MemoryRequirements{}, ErrInvalidImage
	}
	var requirements vk.MemoryRequirements
	vk.GetImageMemoryRequirements(i.device.Handle(), i.handle, &requirements)
	requirements.Deref()
	return requirements, nil
}

// BindMemory binds device memory to the image at the given offset. An
// image may be bound exactly once; the image does not take ownership of
// the memory unless it was bound through AllocateAndBind.
func (i *Image) BindMemory(memory *DeviceMemory, offset vk.DeviceSize) error {
	if !i.IsValid() {
		return ErrInvalidImage
	}
	if i.bound {
		return ErrImageBound
	}
	if memory == nil || !memory.IsValid() {
		return ErrInvalidDevice
	}
	if result := vk.BindImageMemory(i.device.Handle(), i.handle, memory.Handle(), offset); result != vk.Success {
		i.lastResult = result
		return nativeError("vk.BindImageMemory", result)
	}
	i.bound = true
	return nil
}

// AllocateAndBind allocates backing memory with the requested properties
// and binds it. The image owns the allocation and frees it on Release.
func (i *Image) AllocateAndBind(properties vk.MemoryPropertyFlags) error {
	if i.bound {
		return ErrImageBound
	}
	requirements, err := i.MemoryRequirements()
	if err != nil {
		return err
	}
	memory, err := NewDeviceMemoryFor(i.device, requirements.Size, requirements.MemoryTypeBits, properties)
	if err != nil {
		return err
	}
	if err := i.BindMemory(memory, 0); err != nil {
		memory.Release()
		return err
	}
	i.memory = memory
	return nil
}

// Memory returns the owned backing allocation, nil when the image was
// bound to externally managed memory or not bound at all.
func (i *Image) Memory() *DeviceMemory {
	return i.memory
}

// IsBound reports whether memory has been bound to the image.
func (i *Image) IsBound() bool {
	return i.bound
}

// Release destroys the image and frees any owned backing memory.
// Idempotent.
func (i *Image) Release() {
	i.destroy(func(dev vk.Device, handle vk.Image) {
		vk.DestroyImage(dev, handle, nil)
	})
	if i.memory != nil {
		i.memory.Release()
		i.memory = nil
	}
	i.bound = false
}
