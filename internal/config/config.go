// Package config handles wavebg configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings for the background and the page overlay.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Plane    PlaneConfig    `yaml:"plane"`
	Wave     WaveConfig     `yaml:"wave"`
	Reveal   RevealConfig   `yaml:"reveal"`
	Progress ProgressConfig `yaml:"progress"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings for the host window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Antialias  bool   `yaml:"antialias"`
	FPSLimit   int    `yaml:"fps_limit"` // used when vsync is off or the host has no vsync

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// CameraConfig describes the perspective camera. Angles are in degrees.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Pitch    float32    `yaml:"pitch"`
}

// PlaneConfig describes the tessellated surface and its material.
type PlaneConfig struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Segments  int     `yaml:"segments"`
	Color     string  `yaml:"color"`
	Opacity   float32 `yaml:"opacity"`
	Wireframe bool    `yaml:"wireframe"`
	Tilt      float32 `yaml:"tilt"` // rotation about X in degrees
}

// WaveConfig holds the ripple coefficients.
type WaveConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// RevealConfig holds scroll-reveal settings and the page class contract.
type RevealConfig struct {
	PageFile          string        `yaml:"page_file"`
	HomeID            string        `yaml:"home_id"`
	SkillsID          string        `yaml:"skills_id"`
	Threshold         float64       `yaml:"threshold"`
	Retrigger         bool          `yaml:"retrigger"`
	UnobserveOnReveal bool          `yaml:"unobserve_on_reveal"`
	VisibleClass      string        `yaml:"visible_class"`
	ProgressClass     string        `yaml:"progress_class"`
	ProgressAttr      string        `yaml:"progress_attr"`
	Fade              time.Duration `yaml:"fade"`
	ScrollStep        float64       `yaml:"scroll_step"`
}

// ProgressConfig controls how progress bars reach their target width.
// A zero Duration assigns the width in one step.
type ProgressConfig struct {
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config reproducing the stock background and page.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "wavebg",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Antialias: true,
			FPSLimit:  60,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 10, 100},
			Pitch:    -22.5,
		},
		Plane: PlaneConfig{
			Width:     2000,
			Height:    2000,
			Segments:  100,
			Color:     "#808080",
			Opacity:   0.2,
			Wireframe: true,
			Tilt:      -90,
		},
		Wave: WaveConfig{
			Amplitude: 2,
			Frequency: 0.05,
		},
		Reveal: RevealConfig{
			HomeID:        "home",
			SkillsID:      "skills",
			Threshold:     0.3,
			VisibleClass:  "is-visible",
			ProgressClass: "progress-bar",
			ProgressAttr:  "progress",
			Fade:          400 * time.Millisecond,
			ScrollStep:    60,
		},
		Progress: ProgressConfig{
			Easing: "linear",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports the first setting that would make the scene unusable.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes %v/%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Plane.Width <= 0 || c.Plane.Height <= 0:
		return fmt.Errorf("%w: plane size %vx%v", ErrInvalid, c.Plane.Width, c.Plane.Height)
	case c.Plane.Segments <= 0:
		return fmt.Errorf("%w: plane segments %d", ErrInvalid, c.Plane.Segments)
	case c.Plane.Opacity < 0 || c.Plane.Opacity > 1:
		return fmt.Errorf("%w: plane opacity %v", ErrInvalid, c.Plane.Opacity)
	case c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1:
		return fmt.Errorf("%w: reveal threshold %v", ErrInvalid, c.Reveal.Threshold)
	case c.Progress.Duration < 0:
		return fmt.Errorf("%w: progress duration %v", ErrInvalid, c.Progress.Duration)
	}
	return nil
}
