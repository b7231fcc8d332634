package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"sandbox/internal/core"
	"sandbox/internal/sims/sand"
	"sandbox/internal/sweep"
)

func main() {
	base := sand.DefaultConfig()
	base.Bind(flag.CommandLine)
	maxTicks := flag.Int("ticks", 4000, "give up on a scenario after this many ticks")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "results to print")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := core.NewDefaultLogger("settle-sweep", *debug)

	scenarios := sweep.Grid(
		[]float32{0.25, 0.5, 1, 2, 4},
		[]float32{2, 4, 8, 16},
		[]bool{true, false},
	)
	logger.Infof("sweeping %d scenarios on %dx%d (%d workers, %d ticks max)",
		len(scenarios), base.Width, base.Height, *workers, *maxTicks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	runner := sweep.Runner{Base: base, MaxTicks: *maxTicks, Workers: *workers}
	results, err := runner.Run(ctx, scenarios)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		state := "settled"
		if !res.Settled {
			state = "moving"
		}
		fmt.Printf("%2d) ticks=%d %s moves=%d cells=%d %s\n",
			i+1, res.Ticks, state, res.Moves, res.Occupied, res.Scenario)
	}

	unsettled := 0
	for _, res := range results {
		if !res.Settled {
			unsettled++
			logger.Debugf("never settled: %s", res.Scenario)
		}
	}
	if unsettled > 0 {
		logger.Warnf("%d of %d scenarios still moving after %d ticks", unsettled, len(results), *maxTicks)
	}
}
