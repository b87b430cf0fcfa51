package fx

import "github.com/hajimehoshi/ebiten/v2"

const crtShaderSrc = `//kage:unit pixels
package main

var Curvature float
var ScanlineIntensity float
var ChromaticOffset float
var Time float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size

	// Barrel distortion: push samples outward more strongly near the edges.
	centered := uv*2 - 1
	bend := centered.yx * centered.yx * Curvature
	centered *= 1 + bend
	uv = (centered + 1) / 2

	if uv.x < 0 || uv.x > 1 || uv.y < 0 || uv.y > 1 {
		return vec4(0, 0, 0, 1)
	}

	p := uv*size + origin
	shift := vec2(ChromaticOffset, 0)
	r := imageSrc0At(p + shift).r
	g := imageSrc0At(p).g
	b := imageSrc0At(p - shift).b

	// Darken alternating rows, with a faint time-based flicker.
	scan := 1.0
	if mod(floor(p.y-origin.y), 2) < 1 {
		scan = 1 - ScanlineIntensity
	}
	flicker := 1 + 0.015*sin(Time*110)

	return vec4(vec3(r, g, b)*scan*flicker, 1)
}
`

// CRT bends the frame like an old tube screen, splits the color channels
// slightly and darkens alternating scanlines.
type CRT struct {
	shader            *ebiten.Shader
	Curvature         float64
	ScanlineIntensity float64
	ChromaticOffset   float64
	// Time in seconds drives the flicker; the demo advances it every frame.
	Time float64
}

// NewCRT compiles the CRT shader.
func NewCRT(curvature, scanlineIntensity, chromaticOffset float64) (*CRT, error) {
	shader, err := ebiten.NewShader([]byte(crtShaderSrc))
	if err != nil {
		return nil, err
	}
	return &CRT{
		shader:            shader,
		Curvature:         curvature,
		ScanlineIntensity: scanlineIntensity,
		ChromaticOffset:   chromaticOffset,
	}, nil
}

func (c *CRT) Apply(dst, src *ebiten.Image) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Curvature":         float32(c.Curvature),
		"ScanlineIntensity": float32(c.ScanlineIntensity),
		"ChromaticOffset":   float32(c.ChromaticOffset),
		"Time":              float32(c.Time),
	}
	dst.DrawRectShader(w, h, c.shader, op)
}
