// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the event loop poll interval in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	SwapchainSize    uint32
	DeviceExtensions []string

	ScreenWidth  uint32
	ScreenHeight uint32

	// DebugMode enables the validation layers of the active backend
	DebugMode bool
}

// ConfigurationFromEnv builds a configuration from NAZARA_ prefixed
// environment variables, falling back to the given defaults for
// anything unset or unparseable.
func ConfigurationFromEnv(defaults Configuration) Configuration {
	cfg := defaults
	cfg.Time.FramesPerSecond = envInt("NAZARA_FPS", defaults.Time.FramesPerSecond)
	cfg.Time.EventPollDelay = envInt("NAZARA_EVENT_POLL_DELAY", defaults.Time.EventPollDelay)
	cfg.Renderer.ScreenWidth = envUint32("NAZARA_SCREEN_WIDTH", defaults.Renderer.ScreenWidth)
	cfg.Renderer.ScreenHeight = envUint32("NAZARA_SCREEN_HEIGHT", defaults.Renderer.ScreenHeight)
	cfg.Renderer.SwapchainSize = envUint32("NAZARA_SWAPCHAIN_SIZE", defaults.Renderer.SwapchainSize)
	cfg.Renderer.DebugMode = envBool("NAZARA_DEBUG", defaults.Renderer.DebugMode)
	if extensions := envy.Get("NAZARA_DEVICE_EXTENSIONS", ""); extensions != "" {
		cfg.Renderer.DeviceExtensions = strings.Split(extensions, ",")
	}
	return cfg
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}

func envUint32(key string, fallback uint32) uint32 {
	value, err := strconv.ParseUint(envy.Get(key, strconv.FormatUint(uint64(fallback), 10)), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(value)
}

func envBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(envy.Get(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
