package shooter

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// shake jitters the camera after an explosion. The intensity decays along a
// tween instead of the original's linear ramp, which reads a little softer.
type shake struct {
	decay            *gween.Tween
	offsetX, offsetY float64
}

func (s *shake) trigger(intensity, duration float64) {
	s.decay = gween.New(float32(intensity), 0, float32(duration), ease.OutQuad)
}

func (s *shake) step(rng *rand.Rand, dt float64) {
	if s.decay == nil {
		s.offsetX, s.offsetY = 0, 0
		return
	}
	v, done := s.decay.Update(float32(dt))
	if done {
		s.decay = nil
		s.offsetX, s.offsetY = 0, 0
		return
	}
	s.offsetX = (rng.Float64() - 0.5) * 2 * float64(v)
	s.offsetY = (rng.Float64() - 0.5) * 2 * float64(v)
}
