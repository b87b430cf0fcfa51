package fx

import "github.com/hajimehoshi/ebiten/v2"

const glowShaderSrc = `//kage:unit pixels
package main

var Threshold float
var Strength float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	base := imageSrc0At(src)

	// Box-blur the bright pass over a sparse 7x7 neighborhood.
	sum := vec4(0)
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			c := imageSrc0At(src + vec2(float(dx)*2, float(dy)*2))
			sum += max(c-vec4(Threshold), vec4(0))
		}
	}
	sum /= 49

	out := base + sum*Strength
	return clamp(out, vec4(0), vec4(1))
}
`

// Glow adds a soft halo around bright pixels.
type Glow struct {
	shader *ebiten.Shader
	// Threshold is the brightness above which pixels bleed, 0..1.
	Threshold float64
	// Strength scales the halo.
	Strength float64
}

// NewGlow compiles the glow shader.
func NewGlow(threshold, strength float64) (*Glow, error) {
	shader, err := ebiten.NewShader([]byte(glowShaderSrc))
	if err != nil {
		return nil, err
	}
	return &Glow{shader: shader, Threshold: threshold, Strength: strength}, nil
}

func (g *Glow) Apply(dst, src *ebiten.Image) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Threshold": float32(g.Threshold),
		"Strength":  float32(g.Strength),
	}
	dst.DrawRectShader(w, h, g.shader, op)
}
