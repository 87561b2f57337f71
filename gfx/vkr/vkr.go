// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr implements the vulkan rendering backend. It wraps the native
// handles the engine cares about (instance, logical device, device memory,
// images, buffers, shader modules) behind idempotent create/destroy
// lifecycles and implements the gfx backend contracts on top of them.
//
// All calls are synchronous native invocations; a Device and the objects
// it owns must stay on one rendering thread.
package vkr

import (
	"errors"
	"fmt"

	vk "github.com/devblok/vulkan"
)

// package errors
var (
	ErrNoSuitableMemoryType = errors.New("vkr: no memory type matches the requested properties")
	ErrNotHostVisible       = errors.New("vkr: memory was not allocated from a host-visible heap")
	ErrMemoryMapped         = errors.New("vkr: memory is already mapped")
	ErrMemoryNotMapped      = errors.New("vkr: memory is not mapped")
	ErrInvalidImage         = errors.New("vkr: image has not been created")
	ErrImageBound           = errors.New("vkr: image memory can only be bound once")
	ErrInvalidDevice        = errors.New("vkr: device has not been created")
	ErrBadShaderCode        = errors.New("vkr: SPIR-V code length must be a non-zero multiple of four")
)

// nativeError wraps a failed native call with the entry point name,
// matching the call site the error came from.
func nativeError(entryPoint string, result vk.Result) error {
	return fmt.Errorf("%s(): %s", entryPoint, vk.Error(result).Error())
}

func safeString(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\x00' {
		return s
	}
	return s + "\x00"
}

func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}
