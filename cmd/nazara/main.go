// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"

	"github.com/515760058/NazaraEngine/core"
	"github.com/515760058/NazaraEngine/gfx"
	"github.com/515760058/NazaraEngine/gfx/vkr"
	"github.com/515760058/NazaraEngine/model"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

var assets = packr.NewBox("./assets")

var defaults = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  5,
	},
	Renderer: core.RendererConfiguration{
		ScreenWidth:   800,
		ScreenHeight:  600,
		SwapchainSize: 3,
		DeviceExtensions: []string{
			"VK_KHR_swapchain",
		},
	},
}

func newWindow(cfg core.RendererConfiguration) (*sdl.Window, error) {
	return sdl.CreateWindow("Nazara",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_VULKAN)
}

func main() {
	configuration := core.ConfigurationFromEnv(defaults)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatal(err)
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow(configuration.Renderer)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	instance, err := vkr.NewInstance(
		vkr.DefaultApplicationInfo,
		sdl.VulkanGetVkGetInstanceProcAddr(),
		vkr.InstanceConfiguration{
			DebugMode:  configuration.Renderer.DebugMode,
			Extensions: window.VulkanGetInstanceExtensions(),
		})
	if err != nil {
		log.Fatal(err)
	}
	defer instance.Destroy()

	surface, err := window.VulkanCreateSurface(instance.Handle())
	if err != nil {
		log.Fatal(err)
	}
	instance.SetSurface(surface)

	physicalDevices, err := instance.PhysicalDevices()
	if err != nil {
		log.Fatal(err)
	}
	if len(physicalDevices) == 0 {
		log.Fatal("no vulkan capable GPU found")
	}

	device, err := vkr.NewDevice(instance, physicalDevices[0], vkr.DeviceConfiguration{
		Extensions: configuration.Renderer.DeviceExtensions,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer device.Destroy()

	vertexBuffer, err := uploadModel(device)
	if err != nil {
		log.Fatal(err)
	}
	defer vertexBuffer.Buffer().Release()
	log.WithField("vertices", vertexBuffer.VertexCount()).Info("model uploaded")

	service := core.NewTime(configuration.Time)
	defer service.Stop()
	runEventLoop(&service)
}

// loadVertices imports the bundled mesh, falling back to a builtin
// triangle when the asset is missing or damaged.
func loadVertices() []model.Vertex {
	contents, err := assets.Find("cube.dae")
	if err != nil {
		log.WithError(err).Warn("bundled mesh missing, using placeholder")
		return placeholderVertices()
	}
	object, err := model.ImportColladaObject(contents)
	if err != nil {
		log.WithError(err).Warn("bundled mesh unreadable, using placeholder")
		return placeholderVertices()
	}
	return object.Vertices()
}

func placeholderVertices() []model.Vertex {
	normal := glm.Vec3{0, 0, 1}
	white := glm.Vec4{1, 1, 1, 1}
	return []model.Vertex{
		{Pos: glm.Vec3{0, -0.5, 0}, Normal: normal, Color: white},
		{Pos: glm.Vec3{0.5, 0.5, 0}, Normal: normal, Color: white},
		{Pos: glm.Vec3{-0.5, 0.5, 0}, Normal: normal, Color: white},
	}
}

// uploadModel moves the demo mesh into device memory.
func uploadModel(device gfx.Device) (*gfx.VertexBuffer, error) {
	declaration, err := model.Declaration()
	if err != nil {
		return nil, err
	}

	vertices := loadVertices()
	vertexBuffer, err := gfx.NewVertexBufferFor(declaration, device, len(vertices), gfx.StaticUsage, gfx.HardwareStorage)
	if err != nil {
		return nil, err
	}
	if err := vertexBuffer.FillVertices(model.VertexBytes(vertices), 0, false); err != nil {
		vertexBuffer.Buffer().Release()
		return nil, err
	}
	return vertexBuffer, nil
}

func runEventLoop(service *core.Time) {
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-service.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}
}
