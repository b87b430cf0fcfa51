package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker and fires the demo sound effects. If the speaker
// cannot be opened (headless machine, busy device) the player goes silent
// instead of failing the demo.
type Player struct {
	rate   beep.SampleRate
	volume float64
	silent bool
}

// NewPlayer opens the speaker at the given sample rate.
func NewPlayer(sampleRate int, volume float64) *Player {
	rate := beep.SampleRate(sampleRate)
	p := &Player{rate: rate, volume: volume}
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		p.silent = true
	}
	return p
}

func (p *Player) play(s beep.Streamer) {
	if p.silent {
		return
	}
	speaker.Play(s)
}

// LaunchWhoosh plays the firework launch hiss.
func (p *Player) LaunchWhoosh() {
	p.play(launchWhoosh(p.rate, p.volume))
}

// BurstPop plays the firework shell crack.
func (p *Player) BurstPop() {
	p.play(burstPop(p.rate, p.volume))
}

// Explosion plays the shooter's longer rumble.
func (p *Player) Explosion() {
	p.play(explosion(p.rate, p.volume))
}
