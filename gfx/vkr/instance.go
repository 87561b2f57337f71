// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"
	"unsafe"

	vk "github.com/devblok/vulkan"
)

// DefaultApplicationInfo application info describes a Vulkan application
var DefaultApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   safeString("NazaraEngine"),
	PEngineName:        safeString("NazaraEngine"),
}

// InstanceConfiguration is used to configure instance creation
type InstanceConfiguration struct {
	DebugMode bool

	Extensions []string
	Layers     []string
}

// NewInstance creates a vulkan instance and loads the instance-level entry
// points for it. procAddr is the loader's vkGetInstanceProcAddr as handed
// out by the windowing layer, or nil to use the system loader.
func NewInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration) (*Instance, error) {
	if cfg.DebugMode {
		cfg.Layers = append(cfg.Layers, "VK_LAYER_LUNARG_standard_validation")
		cfg.Extensions = append(cfg.Extensions, "VK_EXT_debug_report")
	}

	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.InstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if result := vk.CreateInstance(&instanceInfo, nil, &instance); result != vk.Success {
		return nil, nativeError("vk.CreateInstance", result)
	}

	// resolve the instance-level entry point table
	vk.InitInstance(instance)

	return &Instance{
		configuration:    cfg,
		instance:         instance,
		loadedExtensions: stringSet(cfg.Extensions),
		loadedLayers:     stringSet(cfg.Layers),
	}, nil
}

// Instance wraps a native vulkan instance together with the set of
// extensions and layers it was created with. Destroy resets all state so
// dangling calls surface as invalid-instance errors instead of native
// crashes.
type Instance struct {
	configuration InstanceConfiguration

	instance   vk.Instance
	surface    vk.Surface
	lastResult vk.Result

	loadedExtensions map[string]struct{}
	loadedLayers     map[string]struct{}
}

func stringSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// IsValid reports whether the native instance is live.
func (i *Instance) IsValid() bool {
	return i.instance != nil
}

// IsExtensionLoaded reports whether the named extension was enabled at
// creation time. Callers use it to pick optional code paths.
func (i *Instance) IsExtensionLoaded(name string) bool {
	_, ok := i.loadedExtensions[name]
	return ok
}

// IsLayerLoaded reports whether the named layer was enabled at creation time.
func (i *Instance) IsLayerLoaded(name string) bool {
	_, ok := i.loadedLayers[name]
	return ok
}

// PhysicalDevices returns the handles of all physical devices known to the
// instance. A machine without devices yields an empty slice, not an error.
func (i *Instance) PhysicalDevices() ([]vk.PhysicalDevice, error) {
	if !i.IsValid() {
		return nil, errors.New("vkr: instance has been destroyed")
	}

	var deviceCount uint32
	if result := vk.EnumeratePhysicalDevices(i.instance, &deviceCount, nil); result != vk.Success {
		i.lastResult = result
		return nil, nativeError("vk.EnumeratePhysicalDevices", result)
	}
	if deviceCount == 0 {
		return []vk.PhysicalDevice{}, nil
	}

	devices := make([]vk.PhysicalDevice, deviceCount)
	if result := vk.EnumeratePhysicalDevices(i.instance, &deviceCount, devices); result != vk.Success {
		i.lastResult = result
		return nil, nativeError("vk.EnumeratePhysicalDevices", result)
	}
	return devices[:deviceCount], nil
}

// QueueFamilyProperties returns the dereferenced queue family properties of
// a physical device. An empty result means the device exposes no queues.
func (i *Instance) QueueFamilyProperties(physicalDevice vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &familyCount, nil)
	if familyCount == 0 {
		return []vk.QueueFamilyProperties{}
	}

	families := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &familyCount, families)
	for idx := range families {
		families[idx].Deref()
	}
	return families
}

// SetSurface sets the window surface for rendering
func (i *Instance) SetSurface(pSurface unsafe.Pointer) {
	i.surface = vk.SurfaceFromPointer(uintptr(pSurface))
}

// Surface returns the window surface, a valid but empty surface when unset
func (i *Instance) Surface() vk.Surface {
	if i.surface == nil {
		return vk.NullSurface
	}
	return i.surface
}

// Extensions returns the extensions the instance was created with.
func (i *Instance) Extensions() []string {
	return i.configuration.Extensions
}

// Handle returns the native instance handle.
func (i *Instance) Handle() vk.Instance {
	return i.instance
}

// LastResult returns the result code of the last failed native call.
func (i *Instance) LastResult() vk.Result {
	return i.lastResult
}

// Destroy destroys the native instance. Idempotent; every piece of loaded
// state is reset so later calls fail fast instead of dangling into the
// driver.
func (i *Instance) Destroy() {
	if i.instance != nil {
		vk.DestroyInstance(i.instance, nil)
		i.instance = nil
	}
	i.surface = nil
	i.loadedExtensions = nil
	i.loadedLayers = nil
}
