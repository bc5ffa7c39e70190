// Package osl generates seamlessly-looping and seamlessly-tileable noise
// arrays from 4-dimensional OpenSimplex noise.
//
// # Overview
//
// Animated noise that loops and textures that tile are both produced by the
// same trick: instead of walking a straight line through the noise domain, a
// periodic output axis is traced as a full circle embedded in a pair of
// noise dimensions. After one revolution the sample coordinates land back on
// their starting point, so the first and last samples join without a seam.
// With 4 noise dimensions available there is room for two independent
// circles, which is enough for a looping animation of a 2D image, a looping
// animation of a closed 1D curve, or a 2D image that tiles in both
// directions.
//
// # Quick Start
//
//	import osl "github.com/Dennis-van-Gils/opensimplex-loops"
//
//	// A 200-frame loop of 1000x1000 noise images.
//	stack, err := osl.LoopingAnimated2DImage(200, 1000)
//
//	// A texture that tiles seamlessly in x and y.
//	tile, err := osl.Tileable2DImage(512, osl.WithXStep(1.0/24))
//
// # Routines
//
// Three entry points share the engine, differing only in how output axes map
// onto the 4 noise dimensions:
//
//   - [LoopingAnimated2DImage]: dims 0,1 hold the image plane, dims 2,3 hold
//     the time circle. Output shape [frames, height, width].
//   - [LoopingAnimatedClosed1DCurve]: dims 0,1 hold a spatial circle (the
//     curve closes back-to-front), dims 2,3 hold the time circle. Output
//     shape [frames, points].
//   - [Tileable2DImage]: dims 0,1 hold the x circle, dims 2,3 hold the y
//     circle. Output shape [height, width].
//
// A periodic axis with n samples and arc-length step s becomes a circle of
// radius n*s/(2π); sample i sits at angle 2π·i/n. The output holds exactly n
// samples: sample n would coincide with sample 0, which is what guarantees
// closure.
//
// # Values
//
// All results are OpenSimplex noise values in [-1, 1]. The working precision
// is float64; use the Float32s methods on [Grid] and [Stack] for a
// single-precision copy. Exact extrema are data-dependent and usually well
// inside the bounds.
//
// # Concurrency
//
// Grid cells are independent, so the engine partitions the outermost output
// axis across worker goroutines (GOMAXPROCS by default, see [WithWorkers]).
// Results are bit-identical regardless of the worker count.
//
// # Logging
//
// osl produces no output by default. Call [SetLogger] to receive progress
// lines at Info level, or attach a [ProgressFunc] via [WithProgress].
package osl
