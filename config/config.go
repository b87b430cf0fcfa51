// Package config loads demo configuration from YAML files. Configuration is
// load-time only: a running simulation never re-reads it, and the hot-reload
// watcher swaps in a whole new simulation instead of mutating a live one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Circle is a static circular obstacle in the rope demo.
type Circle struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Post holds the post-processing shader parameters for the rope demo.
type Post struct {
	// PixelSize is the side of one chunky pixel block, in screen pixels.
	PixelSize float64 `yaml:"pixel_size"`
	// Curvature bends the image like a CRT tube face. 0 disables it.
	Curvature float64 `yaml:"curvature"`
	// ScanlineIntensity darkens alternating lines, 0..1.
	ScanlineIntensity float64 `yaml:"scanline_intensity"`
	// ChromaticOffset shifts the red and blue channels apart, in pixels.
	ChromaticOffset float64 `yaml:"chromatic_offset"`
}

// Rope configures the rope demo: window, simulation tuning, obstacles and
// post-processing.
type Rope struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	PointCount int     `yaml:"point_count"`
	Spacing    float64 `yaml:"spacing"`
	AnchorX    float64 `yaml:"anchor_x"`
	AnchorY    float64 `yaml:"anchor_y"`
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
	Damping    float64 `yaml:"damping"`
	TimeStep   float64 `yaml:"time_step"`

	Obstacles []Circle `yaml:"obstacles"`
	Post      Post     `yaml:"post"`
}

// DefaultRope returns the tuning the rope demo ships with.
func DefaultRope() Rope {
	return Rope{
		ScreenWidth:  800,
		ScreenHeight: 600,
		PointCount:   40,
		Spacing:      12,
		AnchorX:      400,
		AnchorY:      80,
		Gravity:      981,
		Iterations:   30,
		Damping:      0.99,
		TimeStep:     1.0 / 60.0,
		Obstacles: []Circle{
			{X: 280, Y: 380, Radius: 60},
			{X: 560, Y: 300, Radius: 40},
		},
		Post: Post{
			PixelSize:         3,
			Curvature:         0.12,
			ScanlineIntensity: 0.25,
			ChromaticOffset:   1.5,
		},
	}
}

// Validate reports the first invalid field, if any. Simulation tuning is
// checked again by verlet.New; the checks here cover the fields only the
// demo layer consumes.
func (r Rope) Validate() error {
	if r.ScreenWidth <= 0 || r.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size %dx%d must be positive", r.ScreenWidth, r.ScreenHeight)
	}
	if r.PointCount < 2 {
		return fmt.Errorf("config: point_count %d, need at least 2", r.PointCount)
	}
	if r.Spacing <= 0 {
		return fmt.Errorf("config: spacing %g must be positive", r.Spacing)
	}
	if r.Iterations < 1 {
		return fmt.Errorf("config: iterations %d, need at least 1", r.Iterations)
	}
	if r.Damping <= 0 || r.Damping > 1 {
		return fmt.Errorf("config: damping %g outside (0, 1]", r.Damping)
	}
	if r.TimeStep <= 0 {
		return fmt.Errorf("config: time_step %g must be positive", r.TimeStep)
	}
	for i, o := range r.Obstacles {
		if o.Radius <= 0 {
			return fmt.Errorf("config: obstacle %d radius %g must be positive", i, o.Radius)
		}
	}
	if r.Post.PixelSize < 1 {
		return fmt.Errorf("config: pixel_size %g must be at least 1", r.Post.PixelSize)
	}
	if r.Post.ScanlineIntensity < 0 || r.Post.ScanlineIntensity > 1 {
		return fmt.Errorf("config: scanline_intensity %g outside [0, 1]", r.Post.ScanlineIntensity)
	}
	return nil
}

// LoadRope reads and validates a rope demo config. Unset fields keep their
// defaults, so a config file only needs the values it overrides.
func LoadRope(path string) (Rope, error) {
	cfg := DefaultRope()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
