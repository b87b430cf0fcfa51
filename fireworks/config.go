package fireworks

import "image/color"

// Config holds the fireworks show tuning.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Gravity pulls rockets and sparks down, in pixels per second^2
	Gravity float64

	// LaunchEveryMin/Max bound the random delay between automatic launches,
	// in seconds
	LaunchEveryMin float64
	LaunchEveryMax float64

	// RocketSpeedMin/Max bound the initial upward speed of a rocket
	RocketSpeedMin float64
	RocketSpeedMax float64

	// SparkCountMin/Max bound how many sparks a burst throws
	SparkCountMin int
	SparkCountMax int

	// SparkSpeedMax caps the radial speed of burst sparks
	SparkSpeedMax float64

	// SparkLifetimeMin/Max bound spark lifetimes in seconds
	SparkLifetimeMin float64
	SparkLifetimeMax float64

	// SparkDrag is the per-second fractional air resistance on sparks
	SparkDrag float64
}

// DefaultConfig returns the tuning the demo ships with.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      800,
		ScreenHeight:     600,
		Gravity:          180,
		LaunchEveryMin:   0.4,
		LaunchEveryMax:   1.4,
		RocketSpeedMin:   380,
		RocketSpeedMax:   480,
		SparkCountMin:    60,
		SparkCountMax:    110,
		SparkSpeedMax:    220,
		SparkLifetimeMin: 1.0,
		SparkLifetimeMax: 2.2,
		SparkDrag:        1.6,
	}
}

// Shell color palette; each burst picks one.
var palette = []color.NRGBA{
	{R: 255, G: 120, B: 80, A: 255},
	{R: 120, G: 200, B: 255, A: 255},
	{R: 255, G: 220, B: 90, A: 255},
	{R: 170, G: 255, B: 140, A: 255},
	{R: 230, G: 130, B: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}
