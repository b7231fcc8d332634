//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandbox/internal/app"
	"sandbox/internal/core"
	"sandbox/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	simCfg := sand.DefaultConfig()
	simCfg.Bind(flag.CommandLine)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := core.NewDefaultLogger("sandbox", cfg.Debug)

	world := sand.NewWithConfig(simCfg.With(cfg.Set))
	world.Reset(0)

	game := app.New(world, cfg, logger)
	size := world.Size()
	logger.Infof("grid %dx%d seed %d fill %s scale %d tps %d",
		size.W, size.H, world.Config().Seed, world.Config().Fill, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("sandbox: " + world.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	logger.Infof("stopped at tick %d", world.Tick())
}
