// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/hellocone/internal/engine/animation"
)

// Renderer variants.
const (
	VariantCone     = "cone"
	VariantTriangle = "triangle"
)

// Config holds all demo settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Animation AnimationConfig `yaml:"animation"`
	Touch     TouchConfig     `yaml:"touch"`
	Capture   CaptureConfig   `yaml:"capture"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RendererConfig selects what is drawn and how.
type RendererConfig struct {
	Variant            string `yaml:"variant"`             // cone or triangle
	ShaderProfile      string `yaml:"shader_profile"`      // core (desktop GL 4.1) or es2
	InitialOrientation string `yaml:"initial_orientation"` // applied right after initialization
}

// AnimationConfig holds rotation animation timing.
type AnimationConfig struct {
	Duration             time.Duration `yaml:"duration"`               // turn duration; the angle animator raises it to a half turn
	RevolutionsPerSecond float32       `yaml:"revolutions_per_second"` // angle animator speed
}

// TouchConfig holds the model scale applied while a finger is down.
type TouchConfig struct {
	PressedScale  float32 `yaml:"pressed_scale"`
	ReleasedScale float32 `yaml:"released_scale"`
}

// CaptureConfig holds frame capture settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Hello Cone",
			Width:      320,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
		},
		Renderer: RendererConfig{
			Variant:            VariantCone,
			ShaderProfile:      "core",
			InitialOrientation: "portrait",
		},
		Animation: AnimationConfig{
			Duration:             250 * time.Millisecond,
			RevolutionsPerSecond: 1,
		},
		Touch: TouchConfig{
			PressedScale:  1.05,
			ReleasedScale: 1.0,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "hellocone",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting the renderer cannot run with.
func (c *Config) Validate() error {
	switch c.Renderer.Variant {
	case VariantCone, VariantTriangle:
	default:
		return fmt.Errorf("renderer.variant: unknown variant %q", c.Renderer.Variant)
	}
	switch c.Renderer.ShaderProfile {
	case "core", "es2":
	default:
		return fmt.Errorf("renderer.shader_profile: unknown profile %q", c.Renderer.ShaderProfile)
	}
	if _, err := animation.ParseOrientation(c.Renderer.InitialOrientation); err != nil {
		return fmt.Errorf("renderer.initial_orientation: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("animation.duration: %v must be positive", c.Animation.Duration)
	}
	if c.Animation.RevolutionsPerSecond <= 0 {
		return fmt.Errorf("animation.revolutions_per_second: %v must be positive", c.Animation.RevolutionsPerSecond)
	}
	if c.Touch.PressedScale <= 0 || c.Touch.ReleasedScale <= 0 {
		return fmt.Errorf("touch: scales must be positive")
	}
	return nil
}
