package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neonbox/audio"
	"neonbox/shooter"
)

func main() {
	cfg := shooter.DefaultConfig()
	snd := audio.NewPlayer(44100, 0.6)

	g, err := shooter.NewGame(cfg, snd)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Voxel Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
