package fx

import "github.com/hajimehoshi/ebiten/v2"

// Kage requires //kage:unit pixels; samples snap to block centers so each
// block shows one uniform color.
const pixelateShaderSrc = `//kage:unit pixels
package main

var PixelSize float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	p := src - origin
	p = floor(p/PixelSize)*PixelSize + vec2(PixelSize*0.5, PixelSize*0.5)
	return imageSrc0At(p + origin)
}
`

// Pixelate quantizes the frame into square blocks.
type Pixelate struct {
	shader *ebiten.Shader
	// Size is the block side in pixels. Values below 1 are drawn as 1.
	Size float64
}

// NewPixelate compiles the pixelation shader.
func NewPixelate(size float64) (*Pixelate, error) {
	shader, err := ebiten.NewShader([]byte(pixelateShaderSrc))
	if err != nil {
		return nil, err
	}
	return &Pixelate{shader: shader, Size: size}, nil
}

func (p *Pixelate) Apply(dst, src *ebiten.Image) {
	size := p.Size
	if size < 1 {
		size = 1
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"PixelSize": float32(size),
	}
	dst.DrawRectShader(w, h, p.shader, op)
}
