// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
)

// object is the lifecycle core shared by every handle owned by a Device.
// Each concrete wrapper supplies only the two native call sites that
// differ: the creation hook and the destruction hook. A handle has exactly
// one logical owner; wrappers are not copied once created.
type object[H comparable] struct {
	device     *Device
	handle     H
	lastResult vk.Result
}

// create runs the native creation hook and takes ownership of the produced
// handle. Prior state is left untouched when the hook fails; the failing
// result code stays retrievable through LastResult.
func (o *object[H]) create(dev *Device, entryPoint string, hook func(vk.Device) (H, vk.Result)) error {
	if dev == nil || !dev.IsValid() {
		return ErrInvalidDevice
	}

	handle, result := hook(dev.Handle())
	o.lastResult = result
	if result != vk.Success {
		return nativeError(entryPoint, result)
	}

	o.device = dev
	o.handle = handle
	return nil
}

// destroy runs the native destruction hook when a handle is live and nulls
// it afterwards. Safe to call any number of times.
func (o *object[H]) destroy(hook func(vk.Device, H)) {
	var zero H
	if o.handle == zero {
		return
	}
	hook(o.device.Handle(), o.handle)
	o.handle = zero
}

// Handle returns the native handle, the zero value before creation and
// after destruction.
func (o *object[H]) Handle() H {
	return o.handle
}

// IsValid reports whether a native handle is currently owned.
func (o *object[H]) IsValid() bool {
	var zero H
	return o.handle != zero
}

// Device returns the owning device.
func (o *object[H]) Device() *Device {
	return o.device
}

// LastResult returns the result code of the last native call made through
// this object.
func (o *object[H]) LastResult() vk.Result {
	return o.lastResult
}
