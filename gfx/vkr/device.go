// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"

	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
)

// DeviceConfiguration is used to configure logical device creation
type DeviceConfiguration struct {
	Extensions []string

	// QueueFlags selects the queue family capability to look for,
	// graphics when left zero.
	QueueFlags vk.QueueFlagBits
}

// NewDevice creates a logical device on the given physical device,
// selecting the first queue family that matches the requested capability.
func NewDevice(instance *Instance, physicalDevice vk.PhysicalDevice, cfg DeviceConfiguration) (*Device, error) {
	if instance == nil || !instance.IsValid() {
		return nil, errors.New("vkr: device needs a live instance")
	}

	required := cfg.QueueFlags
	if required == 0 {
		required = vk.QueueGraphicsBit
	}

	families := instance.QueueFamilyProperties(physicalDevice)
	if len(families) == 0 {
		return nil, errors.New("vk.GetPhysicalDeviceQueueFamilyProperties(): no queue families on GPU")
	}

	queueIndex := -1
	for idx := range families {
		if families[idx].QueueFlags&vk.QueueFlags(required) != 0 {
			queueIndex = idx
			break
		}
	}
	if queueIndex < 0 {
		return nil, errors.New("vkr: could not find a suitable queue family")
	}

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: uint32(queueIndex),
		QueueCount:       1,
		PQueuePriorities: []float32{1, 0},
	}}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
	}

	var vkDevice vk.Device
	if result := vk.CreateDevice(physicalDevice, &dci, nil, &vkDevice); result != vk.Success {
		return nil, nativeError("vk.CreateDevice", result)
	}

	var queue vk.Queue
	vk.GetDeviceQueue(vkDevice, uint32(queueIndex), 0, &queue)

	device := &Device{
		instance:   instance,
		physical:   physicalDevice,
		device:     vkDevice,
		queue:      queue,
		queueIndex: uint32(queueIndex),
	}
	device.memoryTypes = readMemoryTypes(physicalDevice)
	return device, nil
}

// Device wraps a logical vulkan device plus the queue and memory type
// table everything in this package allocates through. It implements the
// gfx.Device backend boundary.
type Device struct {
	instance *Instance

	physical   vk.PhysicalDevice
	device     vk.Device
	queue      vk.Queue
	queueIndex uint32

	memoryTypes []memoryType
	lastResult  vk.Result
}

// IsValid reports whether the logical device is live.
func (d *Device) IsValid() bool {
	return d != nil && d.device != nil
}

// Handle returns the native device handle.
func (d *Device) Handle() vk.Device {
	return d.device
}

// Physical returns the physical device the logical device was created on.
func (d *Device) Physical() vk.PhysicalDevice {
	return d.physical
}

// Instance returns the owning instance.
func (d *Device) Instance() *Instance {
	return d.instance
}

// Queue returns the device queue selected at creation.
func (d *Device) Queue() vk.Queue {
	return d.queue
}

// QueueIndex returns the queue family index of Queue.
func (d *Device) QueueIndex() uint32 {
	return d.queueIndex
}

// LastResult returns the result code of the last failed native call.
func (d *Device) LastResult() vk.Result {
	return d.lastResult
}

// WaitIdle blocks until the device finishes all submitted work.
func (d *Device) WaitIdle() {
	if d.IsValid() {
		vk.DeviceWaitIdle(d.device)
	}
}

// NewBuffer implements gfx.Device
func (d *Device) NewBuffer(typ gfx.BufferType, size int, usage gfx.BufferUsage) (gfx.AbstractBuffer, error) {
	return newBuffer(d, typ, size, usage)
}

// NewTexture implements gfx.Device
func (d *Device) NewTexture(info gfx.TextureInfo) (gfx.AbstractTexture, error) {
	return newTexture(d, info)
}

// Destroy waits for the device to go idle and destroys it. Idempotent.
func (d *Device) Destroy() {
	if !d.IsValid() {
		return
	}
	vk.DeviceWaitIdle(d.device)
	vk.DestroyDevice(d.device, nil)
	d.device = nil
	d.queue = nil
	d.memoryTypes = nil
}
