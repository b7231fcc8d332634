// Package sweep runs headless sand scenarios in parallel and reports how
// long each takes to come to rest.
package sweep

import (
	"context"
	"fmt"
	"sort"

	"sandbox/internal/sims/sand"

	"golang.org/x/sync/errgroup"
)

// Scenario is one point of the parameter grid.
type Scenario struct {
	Gravity     float32
	MaxVelocity float32
	Alternate   bool
}

func (s Scenario) String() string {
	return fmt.Sprintf("gravity=%.2f cap=%.0f alternate=%v", s.Gravity, s.MaxVelocity, s.Alternate)
}

// Result records how a scenario settled.
type Result struct {
	Scenario Scenario
	// Ticks until a tick made no moves, or MaxTicks when the world never rested.
	Ticks    int
	Settled  bool
	Moves    int
	Occupied int
}

// Grid builds the cartesian product of the given options.
func Grid(gravities, caps []float32, alternate []bool) []Scenario {
	var out []Scenario
	for _, g := range gravities {
		for _, c := range caps {
			for _, a := range alternate {
				out = append(out, Scenario{Gravity: g, MaxVelocity: c, Alternate: a})
			}
		}
	}
	return out
}

// Runner steps one world per scenario from the same base config.
type Runner struct {
	Base     sand.Config
	MaxTicks int
	Workers  int
}

// Run evaluates every scenario and returns the results ordered fastest to
// settle first. A scenario that loses material aborts the whole sweep.
func (r Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := r.run(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Settled != results[j].Settled {
			return results[i].Settled
		}
		return results[i].Ticks < results[j].Ticks
	})
	return results, nil
}

func (r Runner) run(ctx context.Context, sc Scenario) (Result, error) {
	cfg := r.Base
	cfg.Fill = sand.FillTestPattern
	cfg.MaxVelocity = sc.MaxVelocity
	cfg.Gravity = sc.Gravity
	cfg.Alternate = sc.Alternate
	world := sand.NewWithConfig(cfg.With(nil))
	world.Reset(0)

	start := world.Stats()
	res := Result{Scenario: sc, Ticks: r.MaxTicks, Occupied: start.Occupied()}
	for tick := 1; tick <= r.MaxTicks; tick++ {
		if tick%64 == 1 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		world.Step()
		res.Moves += world.LastMoves()
		if world.LastMoves() == 0 {
			res.Ticks = tick
			res.Settled = true
			break
		}
	}
	if end := world.Stats(); end.Counts != start.Counts {
		return Result{}, fmt.Errorf("%s: material counts changed from %v to %v", sc, start.Counts, end.Counts)
	}
	return res, nil
}
