// Package fx holds the post-processing filters the demos run over their
// offscreen frames: pixelation, a CRT look (curvature, scanlines, chromatic
// aberration), glow, and an animated background. Each effect is a Kage
// fragment shader; the Go side only uploads uniforms.
package fx

import "github.com/hajimehoshi/ebiten/v2"

// Filter renders src into dst with an effect applied. Implementations must
// not draw outside dst and must treat src as read-only.
type Filter interface {
	Apply(dst, src *ebiten.Image)
}

// Chain applies a sequence of filters, ping-ponging through internal
// buffers so each filter sees the previous one's output.
type Chain struct {
	filters    []Filter
	bufA, bufB *ebiten.Image
}

// NewChain builds a chain over the given filters, applied in order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Apply runs the whole chain from src into dst. With no filters it degrades
// to a plain copy.
func (c *Chain) Apply(dst, src *ebiten.Image) {
	if len(c.filters) == 0 {
		dst.Clear()
		dst.DrawImage(src, nil)
		return
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if c.bufA == nil || c.bufA.Bounds().Dx() != w || c.bufA.Bounds().Dy() != h {
		c.bufA = ebiten.NewImage(w, h)
		c.bufB = ebiten.NewImage(w, h)
	}

	cur := src
	for i, f := range c.filters {
		var out *ebiten.Image
		switch {
		case i == len(c.filters)-1:
			out = dst
		case cur == c.bufA:
			out = c.bufB
		default:
			out = c.bufA
		}
		out.Clear()
		f.Apply(out, cur)
		cur = out
	}
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}
