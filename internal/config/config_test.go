package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults match the original 320x480 portrait surface
	if cfg.Window.Width != 320 {
		t.Errorf("expected width 320, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Renderer.Variant != VariantCone {
		t.Errorf("expected variant cone, got %s", cfg.Renderer.Variant)
	}
	if cfg.Renderer.ShaderProfile != "core" {
		t.Errorf("expected shader profile core, got %s", cfg.Renderer.ShaderProfile)
	}

	if cfg.Animation.Duration != 250*time.Millisecond {
		t.Errorf("expected duration 250ms, got %v", cfg.Animation.Duration)
	}
	if cfg.Animation.RevolutionsPerSecond != 1 {
		t.Errorf("expected 1 revolution per second, got %f", cfg.Animation.RevolutionsPerSecond)
	}

	if cfg.Touch.PressedScale != 1.05 {
		t.Errorf("expected pressed scale 1.05, got %f", cfg.Touch.PressedScale)
	}
	if cfg.Touch.ReleasedScale != 1.0 {
		t.Errorf("expected released scale 1.0, got %f", cfg.Touch.ReleasedScale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 640
  height: 960
  fullscreen: true
  vsync: false

renderer:
  variant: "triangle"
  shader_profile: "es2"
  initial_orientation: "landscape-left"

animation:
  duration: 500ms
  revolutions_per_second: 2

touch:
  pressed_scale: 1.2

logging:
  level: "debug"
  log_file: "hellocone.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 960 {
		t.Errorf("expected height 960, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Renderer.Variant != VariantTriangle {
		t.Errorf("expected variant triangle, got %s", cfg.Renderer.Variant)
	}
	if cfg.Renderer.ShaderProfile != "es2" {
		t.Errorf("expected profile es2, got %s", cfg.Renderer.ShaderProfile)
	}
	if cfg.Renderer.InitialOrientation != "landscape-left" {
		t.Errorf("expected landscape-left, got %s", cfg.Renderer.InitialOrientation)
	}

	if cfg.Animation.Duration != 500*time.Millisecond {
		t.Errorf("expected duration 500ms, got %v", cfg.Animation.Duration)
	}
	if cfg.Animation.RevolutionsPerSecond != 2 {
		t.Errorf("expected 2 revolutions per second, got %f", cfg.Animation.RevolutionsPerSecond)
	}

	if cfg.Touch.PressedScale != 1.2 {
		t.Errorf("expected pressed scale 1.2, got %f", cfg.Touch.PressedScale)
	}
	// Untouched keys keep their defaults
	if cfg.Touch.ReleasedScale != 1.0 {
		t.Errorf("expected released scale 1.0, got %f", cfg.Touch.ReleasedScale)
	}
	if cfg.Capture.Dir != "screenshots" {
		t.Errorf("expected capture dir screenshots, got %s", cfg.Capture.Dir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hellocone.log" {
		t.Errorf("expected log file 'hellocone.log', got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown variant", func(c *Config) { c.Renderer.Variant = "sphere" }, "renderer.variant"},
		{"unknown profile", func(c *Config) { c.Renderer.ShaderProfile = "vulkan" }, "renderer.shader_profile"},
		{"unknown orientation", func(c *Config) { c.Renderer.InitialOrientation = "sideways" }, "renderer.initial_orientation"},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"zero duration", func(c *Config) { c.Animation.Duration = 0 }, "animation.duration"},
		{"negative speed", func(c *Config) { c.Animation.RevolutionsPerSecond = -1 }, "animation.revolutions_per_second"},
		{"zero scale", func(c *Config) { c.Touch.PressedScale = 0 }, "touch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Keep the user's real config out of the search
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "hellocone.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find hellocone.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "variant flag",
			setup: func() {
				*flagVariant = VariantTriangle
			},
			verify: func(cfg *Config) {
				if cfg.Renderer.Variant != VariantTriangle {
					t.Errorf("expected variant triangle, got %s", cfg.Renderer.Variant)
				}
			},
			teardown: func() {
				*flagVariant = ""
			},
		},
		{
			name: "orientation flag",
			setup: func() {
				*flagOrientation = "face-up"
			},
			verify: func(cfg *Config) {
				if cfg.Renderer.InitialOrientation != "face-up" {
					t.Errorf("expected face-up, got %s", cfg.Renderer.InitialOrientation)
				}
			},
			teardown: func() {
				*flagOrientation = ""
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1080
				*flagHeight = 1920
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 1080 {
					t.Errorf("expected width 1080, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1920 {
					t.Errorf("expected height 1920, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file
	*flagConfig = configPath
	*flagWidth = 720
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 720 {
		t.Errorf("expected width 720 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("renderer:\n  variant: sphere\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown variant, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Renderer.Variant = VariantTriangle
	cfg.Animation.Duration = 400 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Renderer.Variant != VariantTriangle {
		t.Errorf("variant: got %s, want triangle", loaded.Renderer.Variant)
	}
	if loaded.Animation.Duration != 400*time.Millisecond {
		t.Errorf("duration: got %v, want 400ms", loaded.Animation.Duration)
	}
}
