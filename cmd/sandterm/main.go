package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sandbox/internal/app"
	"sandbox/internal/core"
	"sandbox/internal/sims/sand"
	"sandbox/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run())
}

func run() int {
	simCfg := sand.DefaultConfig()
	simCfg.Bind(flag.CommandLine)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log lines to this file (the screen is owned by the terminal UI)")
	flag.Parse()

	explicit := explicitSize(flag.CommandLine, cfg.Set)

	logger := core.NopLogger()
	if *logPath != "" {
		file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			return 1
		}
		defer file.Close()
		flags := log.LstdFlags | log.Lmicroseconds
		logger = core.NewLoggerTo("sandterm", cfg.Debug, log.New(file, "", flags), log.New(file, "", flags))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		return 1
	}

	cols, rows := screen.Size()
	simCfg = term.FitConfig(simCfg.With(cfg.Set), cols, rows, explicit)
	world := sand.NewWithConfig(simCfg)
	world.Reset(0)
	logger.Infof("grid %dx%d seed %d fill %s tps %d", simCfg.Width, simCfg.Height, simCfg.Seed, simCfg.Fill, cfg.TPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frontend := term.New(screen, world, cfg.TPS, logger)
	err = frontend.Run(ctx, 16*time.Millisecond)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		logger.Errorf("run: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// explicitSize reports whether the grid size was given on the command line,
// either as -w/-h or as a -set w=/h= override.
func explicitSize(fs *flag.FlagSet, set map[string]string) bool {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "w" || f.Name == "h" {
			explicit = true
		}
	})
	for _, key := range []string{"w", "h"} {
		if _, ok := set[key]; ok {
			explicit = true
		}
	}
	return explicit
}
