package almanac

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Stage is the set of intervals produced by one layer of a pipeline.
type Stage struct {
	Layer     string
	Intervals []Interval
}

// Pipeline applies an ordered sequence of layers.
type Pipeline struct {
	layers []*Layer
}

// NewPipeline returns a pipeline applying layers in the given order.
func NewPipeline(layers ...*Layer) *Pipeline {
	return &Pipeline{layers: layers}
}

// Layers returns the pipeline layers in application order.
func (p *Pipeline) Layers() []*Layer {
	return p.layers
}

// Apply folds r through every layer and returns the final interval set.
func (p *Pipeline) Apply(r Interval) []Interval {
	current := []Interval{r}
	for _, layer := range p.layers {
		current = step(layer, current)
	}
	return current
}

// Trace is like Apply but keeps the interval set produced by every layer.
func (p *Pipeline) Trace(r Interval) []Stage {
	stages := make([]Stage, 0, len(p.layers))
	current := []Interval{r}
	for _, layer := range p.layers {
		current = step(layer, current)
		stages = append(stages, Stage{Layer: layer.Name(), Intervals: current})
	}
	return stages
}

func step(layer *Layer, in []Interval) []Interval {
	out := make([]Interval, 0, len(in))
	for _, r := range in {
		out = append(out, layer.Get(r)...)
	}
	return out
}

// Solve runs every initial interval through the pipeline and returns the
// lowest value reached.
//
// With workers > 1 the initial intervals are evaluated concurrently, at most
// workers at a time.
func (p *Pipeline) Solve(ctx context.Context, initial []Interval, workers int) (uint64, error) {
	if len(initial) == 0 {
		return 0, ErrNoSeeds
	}

	if workers <= 1 {
		lowest := uint64(math.MaxUint64)
		for _, r := range initial {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			lowest = min(lowest, Lowest(p.Apply(r)))
		}
		return lowest, nil
	}

	var (
		mu     sync.Mutex
		lowest = uint64(math.MaxUint64)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, r := range initial {
		r := r // per-iteration copy; module targets go 1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			location := Lowest(p.Apply(r))

			mu.Lock()
			lowest = min(lowest, location)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return lowest, nil
}
