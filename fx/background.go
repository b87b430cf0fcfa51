package fx

import "github.com/hajimehoshi/ebiten/v2"

const backgroundShaderSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := dst.xy / Resolution

	// Slow vertical gradient drift.
	g := 0.5 + 0.5*sin(uv.y*3+Time*0.2)
	base := vec3(0.02, 0.03, 0.08) + vec3(0.03, 0.02, 0.06)*g

	// Faint diagonal bands scrolling across the screen.
	band := 0.5 + 0.5*sin((uv.x+uv.y)*40-Time)
	base += vec3(0.012, 0.012, 0.02) * band

	return vec4(base, 1)
}
`

// Background fills the frame with a slowly animating gradient. It is not a
// Filter: it generates pixels instead of transforming them.
type Background struct {
	shader *ebiten.Shader
}

// NewBackground compiles the background shader.
func NewBackground() (*Background, error) {
	shader, err := ebiten.NewShader([]byte(backgroundShaderSrc))
	if err != nil {
		return nil, err
	}
	return &Background{shader: shader}, nil
}

// Draw fills dst, animated by elapsed seconds.
func (b *Background) Draw(dst *ebiten.Image, elapsed float64) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":       float32(elapsed),
		"Resolution": []float32{float32(w), float32(h)},
	}
	dst.DrawRectShader(w, h, b.shader, op)
}
