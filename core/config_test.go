// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/515760058/NazaraEngine/core"
	"github.com/gobuffalo/envy"
)

var testDefaults = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  5,
	},
	Renderer: core.RendererConfiguration{
		SwapchainSize: 3,
		ScreenWidth:   800,
		ScreenHeight:  600,
	},
}

func TestConfigurationFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := core.ConfigurationFromEnv(testDefaults)
		if cfg.Time != testDefaults.Time {
			t.Errorf("expected default time config back, got %+v", cfg.Time)
		}
		if cfg.Renderer.SwapchainSize != 3 || cfg.Renderer.ScreenWidth != 800 || cfg.Renderer.ScreenHeight != 600 {
			t.Errorf("expected default renderer config back, got %+v", cfg.Renderer)
		}
	})
}

func TestConfigurationFromEnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set("NAZARA_FPS", "144")
		envy.Set("NAZARA_SCREEN_WIDTH", "1920")
		envy.Set("NAZARA_SCREEN_HEIGHT", "1080")
		envy.Set("NAZARA_DEBUG", "true")

		cfg := core.ConfigurationFromEnv(testDefaults)
		if cfg.Time.FramesPerSecond != 144 {
			t.Errorf("expected fps 144, got %d", cfg.Time.FramesPerSecond)
		}
		if cfg.Renderer.ScreenWidth != 1920 || cfg.Renderer.ScreenHeight != 1080 {
			t.Errorf("unexpected screen size: %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
		}
		if !cfg.Renderer.DebugMode {
			t.Error("expected debug mode on")
		}
		if cfg.Time.EventPollDelay != 5 {
			t.Errorf("untouched value changed: %d", cfg.Time.EventPollDelay)
		}
	})
}

func TestConfigurationFromEnvBadValues(t *testing.T) {
	envy.Temp(func() {
		envy.Set("NAZARA_FPS", "very fast")
		cfg := core.ConfigurationFromEnv(testDefaults)
		if cfg.Time.FramesPerSecond != 60 {
			t.Errorf("expected fallback to default, got %d", cfg.Time.FramesPerSecond)
		}
	})
}

func TestNewTimeDefaults(t *testing.T) {
	service := core.NewTime(core.TimeConfiguration{FramesPerSecond: 30})
	defer service.Stop()
	if service.Fps() != 30 {
		t.Errorf("expected 30 fps, got %d", service.Fps())
	}
	if service.EventPollDelay() != 1 {
		t.Errorf("expected poll delay fallback of 1ms, got %d", service.EventPollDelay())
	}
	if service.FpsTicker() == nil || service.EventTicker() == nil {
		t.Error("tickers must be initialised")
	}
}
