// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"testing"

	vk "github.com/devblok/vulkan"
)

func TestInstanceLoadedSets(t *testing.T) {
	instance := &Instance{
		loadedExtensions: stringSet([]string{"VK_KHR_surface", "VK_EXT_debug_report"}),
		loadedLayers:     stringSet([]string{"VK_LAYER_LUNARG_standard_validation"}),
	}

	if !instance.IsExtensionLoaded("VK_KHR_surface") {
		t.Error("enabled extension reported missing")
	}
	if instance.IsExtensionLoaded("VK_KHR_display") {
		t.Error("extension never enabled reported loaded")
	}
	if !instance.IsLayerLoaded("VK_LAYER_LUNARG_standard_validation") {
		t.Error("enabled layer reported missing")
	}
}

func TestInstanceDestroyIdempotent(t *testing.T) {
	instance := &Instance{
		loadedExtensions: stringSet([]string{"VK_KHR_surface"}),
		loadedLayers:     stringSet([]string{"VK_LAYER_LUNARG_standard_validation"}),
	}

	instance.Destroy()
	instance.Destroy()

	if instance.IsValid() {
		t.Error("instance must be invalid after Destroy")
	}
	if instance.IsExtensionLoaded("VK_KHR_surface") {
		t.Error("loaded extension set must reset on Destroy")
	}
	if instance.IsLayerLoaded("VK_LAYER_LUNARG_standard_validation") {
		t.Error("loaded layer set must reset on Destroy")
	}
	if instance.Surface() != vk.NullSurface {
		t.Error("surface must reset to the null surface")
	}
}

func TestDestroyedInstanceRejectsEnumeration(t *testing.T) {
	instance := &Instance{}
	instance.Destroy()
	if _, err := instance.PhysicalDevices(); err == nil {
		t.Error("expected an error enumerating through a destroyed instance")
	}
}
