package osl

import (
	"time"

	"github.com/Dennis-van-Gils/opensimplex-loops/internal/parallel"
)

// LoopingAnimated2DImage generates a stack of seamlessly-looping animated 2D
// images. Noise dimensions 0 and 1 describe a plane in space, projected onto
// the image; dimensions 2 and 3 describe a circle in time, so the last frame
// runs seamlessly into the first.
//
// nFrames is the number of time frames, nPixelsX the image width. The image
// height and the y step follow the x-axis values unless overridden with
// [WithPixelsY] and [WithYStep].
//
// The returned stack has shape [nFrames, height, width] with values in
// [-1, 1]; the exact extrema are data-dependent and usually well inside the
// bounds.
func LoopingAnimated2DImage(nFrames, nPixelsX int, opts ...Option) (*Stack, error) {
	if err := checkCount("frame count", nFrames); err != nil {
		return nil, err
	}
	if err := checkCount("x pixel count", nPixelsX); err != nil {
		return nil, err
	}
	cfg, err := resolveConfig(nPixelsX, opts)
	if err != nil {
		return nil, err
	}

	noise := cfg.generator()
	timeCircle := newCircle(nFrames, cfg.tStep)
	out := newStack(nFrames, cfg.pixelsY, nPixelsX)

	run(&cfg, "looping animated 2D image", nFrames, func(f int) {
		z, w := timeCircle.at(f)
		for y := 0; y < out.height; y++ {
			yc := float64(y) * cfg.yStep
			row := out.row(f, y)
			for x := range row {
				row[x] = noise.Eval4(float64(x)*cfg.xStep, yc, z, w)
			}
		}
	})
	return out, nil
}

// LoopingAnimatedClosed1DCurve generates a stack of seamlessly-looping
// animated 1D curves, each curve in turn closing up seamlessly
// back-to-front. Noise dimensions 0 and 1 describe a circle in space,
// projected onto the curve; dimensions 2 and 3 describe a circle in time.
//
// nFrames is the number of time frames, nPixelsX the number of curve points.
//
// The returned grid has shape [nFrames, nPixelsX] (rows are frames) with
// values in [-1, 1].
func LoopingAnimatedClosed1DCurve(nFrames, nPixelsX int, opts ...Option) (*Grid, error) {
	if err := checkCount("frame count", nFrames); err != nil {
		return nil, err
	}
	if err := checkCount("x pixel count", nPixelsX); err != nil {
		return nil, err
	}
	cfg, err := resolveConfig(nPixelsX, opts)
	if err != nil {
		return nil, err
	}

	noise := cfg.generator()
	spaceCircle := newCircle(nPixelsX, cfg.xStep)
	timeCircle := newCircle(nFrames, cfg.tStep)
	out := newGrid(nFrames, nPixelsX)

	// The spatial circle is identical in every frame.
	xu, xv := spaceCircle.table()

	run(&cfg, "looping animated closed 1D curve", nFrames, func(f int) {
		z, w := timeCircle.at(f)
		row := out.row(f)
		for x := range row {
			row[x] = noise.Eval4(xu[x], xv[x], z, w)
		}
	})
	return out, nil
}

// Tileable2DImage generates a single 2D image that tiles seamlessly in both
// directions. Noise dimensions 0 and 1 describe a circle projected onto the
// x-axis, dimensions 2 and 3 a second circle projected onto the y-axis.
//
// nPixelsX is the image width. The height and the y step follow the x-axis
// values unless overridden with [WithPixelsY] and [WithYStep].
//
// The returned grid has shape [height, width] with values in [-1, 1].
func Tileable2DImage(nPixelsX int, opts ...Option) (*Grid, error) {
	if err := checkCount("x pixel count", nPixelsX); err != nil {
		return nil, err
	}
	cfg, err := resolveConfig(nPixelsX, opts)
	if err != nil {
		return nil, err
	}

	noise := cfg.generator()
	xCircle := newCircle(nPixelsX, cfg.xStep)
	yCircle := newCircle(cfg.pixelsY, cfg.yStep)
	out := newGrid(cfg.pixelsY, nPixelsX)

	// The x circle is identical in every row.
	xu, xv := xCircle.table()

	run(&cfg, "tileable 2D image", cfg.pixelsY, func(y int) {
		zu, zv := yCircle.at(y)
		row := out.row(y)
		for x := range row {
			row[x] = noise.Eval4(xu[x], xv[x], zu, zv)
		}
	})
	return out, nil
}

// run evaluates unit(i) for every i in [0, outer), partitioned across the
// configured workers. Each unit owns a disjoint slice of the output buffer,
// so evaluation order never affects the result. Progress and logging are
// emitted only in verbose mode and never change the generated values.
func run(cfg *config, routine string, outer int, unit func(i int)) {
	log := Logger()
	var tick time.Time
	if cfg.verbose {
		tick = time.Now()
		log.Info("generating noise", "routine", routine, "units", outer)
	}

	var progress func(done, total int)
	if cfg.verbose && cfg.progress != nil {
		progress = cfg.progress
	}
	tracker := parallel.NewTracker(outer, progress)

	parallel.Chunks(outer, cfg.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			unit(i)
			tracker.Step(1)
		}
	})

	if cfg.verbose {
		log.Info("noise done", "routine", routine, "elapsed", time.Since(tick))
	}
}
