package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neonbox/audio"
	"neonbox/fireworks"
)

func main() {
	cfg := fireworks.DefaultConfig()
	snd := audio.NewPlayer(44100, 0.6)

	s, err := fireworks.NewShow(cfg, snd)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
