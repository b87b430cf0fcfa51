package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neonbox/config"
	"neonbox/rope"
)

func main() {
	configPath := flag.String("config", "", "rope config YAML; watched for changes while running")
	flag.Parse()

	cfg := config.DefaultRope()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadRope(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	g, err := rope.NewGame(cfg, *configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Verlet Rope")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
