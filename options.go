package osl

import (
	"errors"
	"fmt"
)

// DefaultSeed is the noise seed used when none is supplied.
const DefaultSeed = 3

// ErrInvalidParameter is wrapped by all argument-validation errors. Every
// parameter is checked before any buffer is allocated or any noise is
// evaluated; a failed call returns no data.
var ErrInvalidParameter = errors.New("osl: invalid parameter")

// ProgressFunc observes generation progress. It receives the number of
// completed outer-axis units (frames, or rows for the tileable routine) and
// the total; done grows monotonically and ends at total. Reporting is purely
// observational and never affects the generated values.
//
// The callback may be invoked from worker goroutines, one call at a time.
type ProgressFunc func(done, total int)

// Option configures a generation call.
//
// Example:
//
//	// Non-square tile with a custom seed
//	tile, err := osl.Tileable2DImage(512,
//	    osl.WithPixelsY(256),
//	    osl.WithSeed(42),
//	)
type Option func(*config)

// config is the fully-resolved set of parameters for one call. Defaulting
// cascades (pixelsY from pixelsX, yStep from xStep) are applied up front so
// the engine only ever sees concrete values.
type config struct {
	pixelsY  int
	tStep    float64
	xStep    float64
	yStep    float64
	seed     int64
	noise    Noise4
	workers  int
	progress ProgressFunc
	verbose  bool
}

// WithPixelsY sets the pixel count of the y-axis. If n is 0, the x-axis
// pixel count is used; negative values are rejected. Only
// [LoopingAnimated2DImage] and [Tileable2DImage] have a y-axis.
func WithPixelsY(n int) Option {
	return func(c *config) { c.pixelsY = n }
}

// WithTimeStep sets the time step between frames (default 0.1). Larger steps
// make the animation change faster between frames.
func WithTimeStep(step float64) Option {
	return func(c *config) { c.tStep = step }
}

// WithXStep sets the spatial step in the x-direction (default 0.01). The
// step is the feature scale: a step of 1/24 gives features roughly 24 pixels
// across.
func WithXStep(step float64) Option {
	return func(c *config) { c.xStep = step }
}

// WithYStep sets the spatial step in the y-direction. If step is 0, the
// x-step is used; negative values are rejected.
func WithYStep(step float64) Option {
	return func(c *config) { c.yStep = step }
}

// WithSeed sets the OpenSimplex seed (default [DefaultSeed]). Ignored when a
// custom generator is injected via [WithNoise].
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithNoise injects a custom 4D noise generator in place of the default
// seeded OpenSimplex one. The generator must be safe for concurrent calls.
func WithNoise(n Noise4) Option {
	return func(c *config) { c.noise = n }
}

// WithWorkers sets the number of worker goroutines. If n is 0 or negative,
// GOMAXPROCS is used. The worker count never changes the generated values,
// only the latency.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithProgress attaches a progress callback. Suppressed when verbose mode is
// off (see [WithVerbose]).
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) { c.progress = fn }
}

// WithVerbose toggles progress emission (default on). When off, the progress
// callback is never invoked and no log lines are written. Verbosity never
// affects the generated values.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

// resolveConfig applies defaults, options, and the defaulting cascade, then
// validates every resolved parameter. nPixelsX feeds the pixelsY default and
// must itself be validated by the caller.
func resolveConfig(nPixelsX int, opts []Option) (config, error) {
	cfg := config{
		tStep:   0.1,
		xStep:   0.01,
		seed:    DefaultSeed,
		verbose: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.pixelsY == 0 {
		cfg.pixelsY = nPixelsX
	}
	if cfg.yStep == 0 {
		cfg.yStep = cfg.xStep
	}

	if cfg.pixelsY < 1 {
		return config{}, fmt.Errorf("%w: y pixel count must be >= 1, got %d", ErrInvalidParameter, cfg.pixelsY)
	}
	if cfg.tStep <= 0 {
		return config{}, fmt.Errorf("%w: time step must be > 0, got %g", ErrInvalidParameter, cfg.tStep)
	}
	if cfg.xStep <= 0 {
		return config{}, fmt.Errorf("%w: x step must be > 0, got %g", ErrInvalidParameter, cfg.xStep)
	}
	if cfg.yStep <= 0 {
		return config{}, fmt.Errorf("%w: y step must be > 0, got %g", ErrInvalidParameter, cfg.yStep)
	}
	return cfg, nil
}

// checkCount validates a required size parameter.
func checkCount(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidParameter, name, n)
	}
	return nil
}

// generator returns the configured noise primitive, constructing the default
// seeded one on demand.
func (c *config) generator() Noise4 {
	if c.noise != nil {
		return c.noise
	}
	return newNoise(c.seed)
}
