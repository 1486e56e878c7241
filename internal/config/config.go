// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// MinCameraDistance bounds render.camera_distance from below. The parked
// filler cluster reaches about 152 units from the scene anchor, and every
// corner must stay in front of the camera.
const MinCameraDistance = 160

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Shading    ShadingConfig    `yaml:"shading"`
	Animation  AnimationConfig  `yaml:"animation"`
	HUD        HUDConfig        `yaml:"hud"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
	Title      string `yaml:"title"`
}

// RenderConfig holds software renderer settings.
type RenderConfig struct {
	Trig           string   `yaml:"trig"`       // precise | legacy
	Degenerate     string   `yaml:"degenerate"` // skip | clamp
	Focal          float32  `yaml:"focal"`
	CameraDistance float32  `yaml:"camera_distance"`
	Background     HexColor `yaml:"background"`
	Interpolation  string   `yaml:"interpolation"` // direct | slerp
}

// ShadingConfig holds face lighting settings.
type ShadingConfig struct {
	Darken         float32 `yaml:"darken"`
	Floor          float32 `yaml:"floor"`
	SelectedBoost  float32 `yaml:"selected_boost"`
	LightLongitude float32 `yaml:"light_longitude"`
	LightLatitude  float32 `yaml:"light_latitude"`
}

// AnimationConfig holds host animation and input settings.
type AnimationConfig struct {
	StepPercent     float32 `yaml:"step_percent"`
	KeyStep         float32 `yaml:"key_step"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
}

// HUDConfig holds overlay settings.
type HUDConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Language string   `yaml:"language"`
	Color    HexColor `yaml:"color"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// HexColor is a packed ABGR colour written as a hex string in YAML.
type HexColor uint32

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("0x%08X", uint32(c)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Any Go integer literal form is
// accepted.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	v, err := strconv.ParseUint(value.Value, 0, 32)
	if err != nil {
		return fmt.Errorf("line %d: color %q: %w", value.Line, value.Value, err)
	}
	*c = HexColor(v)
	return nil
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			Title:      "Hypercube",
		},
		Render: RenderConfig{
			Trig:           "precise",
			Degenerate:     "skip",
			Focal:          3000,
			CameraDistance: 200,
			Background:     0xFF000000,
			Interpolation:  "direct",
		},
		Shading: ShadingConfig{
			Darken:         0.9,
			Floor:          0.7,
			SelectedBoost:  1.35,
			LightLongitude: 0,
			LightLatitude:  90,
		},
		Animation: AnimationConfig{
			StepPercent:     15,
			KeyStep:         0.05,
			DragSensitivity: 0.005,
		},
		HUD: HUDConfig{
			Enabled:  false,
			Language: "en",
			Color:    0xFFFFFFFF,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "hypercube",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.Trig != "precise" && c.Render.Trig != "legacy":
		return fmt.Errorf("%w: render.trig %q", ErrInvalid, c.Render.Trig)
	case c.Render.Degenerate != "skip" && c.Render.Degenerate != "clamp":
		return fmt.Errorf("%w: render.degenerate %q", ErrInvalid, c.Render.Degenerate)
	case c.Render.Interpolation != "direct" && c.Render.Interpolation != "slerp":
		return fmt.Errorf("%w: render.interpolation %q", ErrInvalid, c.Render.Interpolation)
	case c.Render.CameraDistance <= MinCameraDistance:
		return fmt.Errorf("%w: render.camera_distance %v must exceed %v", ErrInvalid, c.Render.CameraDistance, MinCameraDistance)
	case c.Render.Focal <= 0:
		return fmt.Errorf("%w: render.focal %v", ErrInvalid, c.Render.Focal)
	case c.Animation.StepPercent <= 0 || c.Animation.StepPercent > 100:
		return fmt.Errorf("%w: animation.step_percent %v", ErrInvalid, c.Animation.StepPercent)
	case c.Shading.Floor < 0 || c.Shading.Floor > 1:
		return fmt.Errorf("%w: shading.floor %v", ErrInvalid, c.Shading.Floor)
	}
	return nil
}
