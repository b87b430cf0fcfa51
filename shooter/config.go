package shooter

import "image/color"

// Config holds the shooter demo tuning.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// PlayerSpeed is the horizontal run speed in pixels per second
	PlayerSpeed float64

	// JumpVelocity is the initial vertical speed of a jump (negative is up)
	JumpVelocity float64

	// Gravity in pixels per second^2
	Gravity float64

	// BulletSpeed in pixels per second
	BulletSpeed float64

	// VoxelSize is the side of one terrain cell in pixels
	VoxelSize float64

	// DrawRadius is the terrain paint brush radius in pixels
	DrawRadius float64

	// StepHeight is the tallest ledge the player automatically steps onto
	StepHeight float64

	// ExplosionRadius is how far a bullet impact clears terrain
	ExplosionRadius float64

	// ParticleLifetime in seconds
	ParticleLifetime float64

	// ShakeDuration and ShakeIntensity tune the impact screen shake
	ShakeDuration  float64
	ShakeIntensity float64
}

// DefaultConfig returns the tuning the demo ships with.
func DefaultConfig() Config {
	const voxel = 4.0
	return Config{
		ScreenWidth:      800,
		ScreenHeight:     600,
		PlayerSpeed:      300,
		JumpVelocity:     -400,
		Gravity:          981,
		BulletSpeed:      800,
		VoxelSize:        voxel,
		DrawRadius:       3 * voxel,
		StepHeight:       voxel,
		ExplosionRadius:  4 * voxel,
		ParticleLifetime: 1.2,
		ShakeDuration:    0.2,
		ShakeIntensity:   8,
	}
}

var (
	colorPlayer   = color.NRGBA{R: 80, G: 220, B: 100, A: 255}
	colorVoxel    = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorBullet   = color.NRGBA{R: 255, G: 240, B: 80, A: 255}
	colorExplode  = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	colorDebris   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorTrailDot = color.NRGBA{R: 255, G: 255, B: 0, A: 128}
)
