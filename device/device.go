// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device provides physical rendering device introspection on top
// of a live vulkan instance.
package device

import (
	"github.com/515760058/NazaraEngine/gfx/vkr"
	vk "github.com/devblok/vulkan"
)

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int      `json:"id"`
	VendorID      int      `json:"vendorId"`
	DriverVersion int      `json:"driverVersion"`
	Name          string   `json:"name"`
	Invalid       bool     `json:"invalid"`
	Extensions    []string `json:"extensions"`
	Layers        []string `json:"layers"`
	Memory        uint64   `json:"memory"`
}

// Enumerate collects info for every physical device visible through the
// instance. Devices that fail a property query are returned with Invalid
// set instead of aborting the whole enumeration.
func Enumerate(instance *vkr.Instance) ([]PhysicalDeviceInfo, error) {
	physicalDevices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}

	infos := make([]PhysicalDeviceInfo, len(physicalDevices))
	for idx, physicalDevice := range physicalDevices {
		infos[idx] = describe(physicalDevice)
	}
	return infos, nil
}

func describe(physicalDevice vk.PhysicalDevice) PhysicalDeviceInfo {
	var info PhysicalDeviceInfo

	var numExtensions uint32
	if result := vk.EnumerateDeviceExtensionProperties(physicalDevice, "", &numExtensions, nil); result != vk.Success {
		info.Invalid = true
	}
	extensions := make([]vk.ExtensionProperties, numExtensions)
	if result := vk.EnumerateDeviceExtensionProperties(physicalDevice, "", &numExtensions, extensions); result != vk.Success {
		info.Invalid = true
	}
	for _, ext := range extensions {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	var numLayers uint32
	if result := vk.EnumerateDeviceLayerProperties(physicalDevice, &numLayers, nil); result != vk.Success {
		info.Invalid = true
	}
	layers := make([]vk.LayerProperties, numLayers)
	if result := vk.EnumerateDeviceLayerProperties(physicalDevice, &numLayers, layers); result != vk.Success {
		info.Invalid = true
	}
	for _, layer := range layers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(physicalDevice, &memoryProperties)
	memoryProperties.Deref()
	for heap := uint32(0); heap < memoryProperties.MemoryHeapCount; heap++ {
		memoryProperties.MemoryHeaps[heap].Deref()
		info.Memory += uint64(memoryProperties.MemoryHeaps[heap].Size)
	}

	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(physicalDevice, &properties)
	properties.Deref()
	info.ID = int(properties.DeviceID)
	info.VendorID = int(properties.VendorID)
	info.DriverVersion = int(properties.DriverVersion)
	info.Name = vk.ToString(properties.DeviceName[:])

	return info
}
