package almanac

import (
	"context"
	"io"

	"github.com/menmos/almanac-go/config"
	"github.com/menmos/almanac-go/input"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Solver parses almanacs and finds the lowest location their seeds reach.
type Solver struct {
	variant Variant
	workers int
	logger  *zap.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithVariant selects how seeds are read. The default is Ranges.
func WithVariant(v Variant) Option {
	return func(s *Solver) {
		s.variant = v
	}
}

// WithWorkers sets how many initial intervals are solved concurrently.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// New returns a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		variant: Ranges,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromProfile returns a Solver configured from a profile.
// Options are applied after the profile and take precedence.
func NewFromProfile(profile config.Profile, opts ...Option) (*Solver, error) {
	variant, err := ParseVariant(profile.Variant)
	if err != nil {
		return nil, errors.Wrap(err, "invalid profile")
	}
	if profile.Workers < 0 {
		return nil, errors.Errorf("invalid profile: negative worker count %d", profile.Workers)
	}

	base := []Option{WithVariant(variant)}
	if profile.Workers > 0 {
		base = append(base, WithWorkers(profile.Workers))
	}
	return New(append(base, opts...)...), nil
}

// Variant returns the seed variant the solver uses.
func (s *Solver) Variant() Variant {
	return s.variant
}

// Workers returns the worker count the solver uses.
func (s *Solver) Workers() int {
	return s.workers
}

// Result is the outcome of a solve.
type Result struct {
	Lowest  uint64
	Variant Variant
	Seeds   int
	Layers  int
}

// Solve finds the lowest location reachable from the almanac's seeds.
func (s *Solver) Solve(ctx context.Context, a *input.Almanac) (Result, error) {
	seeds, pipeline, err := s.prepare(a)
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("solving almanac",
		zap.Stringer("variant", s.variant),
		zap.Int("seeds", len(seeds)),
		zap.Int("layers", len(pipeline.Layers())),
		zap.Int("workers", s.workers))

	lowest, err := pipeline.Solve(ctx, seeds, s.workers)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to solve almanac")
	}

	s.logger.Debug("solved almanac", zap.Uint64("lowest", lowest))

	return Result{
		Lowest:  lowest,
		Variant: s.variant,
		Seeds:   len(seeds),
		Layers:  len(pipeline.Layers()),
	}, nil
}

// SolveReader parses an almanac from r and solves it.
func (s *Solver) SolveReader(ctx context.Context, r io.Reader) (Result, error) {
	a, err := input.Parse(r)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to parse almanac")
	}
	return s.Solve(ctx, a)
}

// SolveFile parses the almanac at path and solves it.
func (s *Solver) SolveFile(ctx context.Context, path string) (Result, error) {
	a, err := input.ParseFile(path)
	if err != nil {
		return Result{}, err
	}
	return s.Solve(ctx, a)
}

// SeedTrace holds the stages one initial interval went through.
type SeedTrace struct {
	Seed   Interval
	Stages []Stage
}

// Trace returns, for every initial interval, the interval set after each layer.
func (s *Solver) Trace(a *input.Almanac) ([]SeedTrace, error) {
	seeds, pipeline, err := s.prepare(a)
	if err != nil {
		return nil, err
	}

	traces := make([]SeedTrace, 0, len(seeds))
	for _, seed := range seeds {
		stages := pipeline.Trace(seed)
		for _, stage := range stages {
			s.logger.Debug("stage",
				zap.Stringer("seed", seed),
				zap.String("layer", stage.Layer),
				zap.Int("fragments", len(stage.Intervals)))
		}
		traces = append(traces, SeedTrace{Seed: seed, Stages: stages})
	}
	return traces, nil
}

func (s *Solver) prepare(a *input.Almanac) ([]Interval, *Pipeline, error) {
	seeds, err := SeedIntervals(a.Seeds, s.variant)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid seeds")
	}

	pipeline, err := BuildPipeline(a)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid almanac")
	}
	return seeds, pipeline, nil
}
