// Command osldemo renders the opensimplex-loops routines to image files: a
// seamlessly-tileable PNG (shown as a 2x2 tile grid), a seamlessly-looping
// animated GIF, and a closed-curve stack rendered as a grayscale PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"

	osl "github.com/Dennis-van-Gils/opensimplex-loops"
)

func main() {
	var (
		pixels  = flag.Int("pixels", 256, "tile size in pixels")
		frames  = flag.Int("frames", 50, "number of animation frames")
		feature = flag.Float64("feature", 24, "feature size in pixels")
		tStep   = flag.Float64("tstep", 0.1, "time step between frames")
		seed    = flag.Int64("seed", 3, "noise seed")
		scale   = flag.Int("scale", 2, "integer upscale factor for the outputs")
		outDir  = flag.String("dir", ".", "output directory")
	)
	flag.Parse()

	step := 1.0 / *feature

	if err := tileDemo(*outDir, *pixels, step, *seed, *scale); err != nil {
		log.Fatalf("tileable demo: %v", err)
	}
	if err := loopDemo(*outDir, *frames, *pixels, step, *tStep, *seed, *scale); err != nil {
		log.Fatalf("looping demo: %v", err)
	}
	if err := curveDemo(*outDir, *frames, *pixels, step, *tStep, *seed, *scale); err != nil {
		log.Fatalf("curve demo: %v", err)
	}
}

// tileDemo writes a 2x2 grid of the same tileable noise image; the seams
// between the copies are invisible, which is the point.
func tileDemo(dir string, pixels int, step float64, seed int64, scale int) error {
	grid, err := osl.Tileable2DImage(pixels,
		osl.WithXStep(step),
		osl.WithSeed(seed),
		osl.WithProgress(progress(pixels, "tileable 2D image")),
	)
	if err != nil {
		return err
	}

	tile := grayImage(grid)
	doubled := image.NewGray(image.Rect(0, 0, 2*pixels, 2*pixels))
	for _, offset := range []image.Point{{0, 0}, {pixels, 0}, {0, pixels}, {pixels, pixels}} {
		draw.Draw(doubled, tile.Bounds().Add(offset), tile, image.Point{}, draw.Src)
	}

	path := filepath.Join(dir, "tileable_2D_image.png")
	if err := writePNG(path, upscale(doubled, scale)); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d tile, 2x2 grid)", path, pixels, pixels)
	return nil
}

// loopDemo writes a seamlessly-looping animated GIF, the same export the
// original demo script produces.
func loopDemo(dir string, frames, pixels int, step, tStep float64, seed int64, scale int) error {
	stack, err := osl.LoopingAnimated2DImage(frames, pixels,
		osl.WithXStep(step),
		osl.WithTimeStep(tStep),
		osl.WithSeed(seed),
		osl.WithProgress(progress(frames, "looping animated 2D image")),
	)
	if err != nil {
		return err
	}

	anim := gif.GIF{LoopCount: 0}
	for f := 0; f < stack.Frames(); f++ {
		anim.Image = append(anim.Image, palettedFrame(upscale(grayImage(stack.Frame(f)), scale)))
		anim.Delay = append(anim.Delay, 4) // hundredths of a second
	}

	path := filepath.Join(dir, "looping_animated_2D_image.gif")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := gif.EncodeAll(out, &anim); err != nil {
		return err
	}
	log.Printf("wrote %s (%d frames of %dx%d)", path, frames, pixels, pixels)
	return nil
}

// curveDemo writes the closed-curve stack as a single grayscale image (rows
// are frames, columns are curve points). It wraps seamlessly both ways.
func curveDemo(dir string, frames, pixels int, step, tStep float64, seed int64, scale int) error {
	grid, err := osl.LoopingAnimatedClosed1DCurve(frames, pixels,
		osl.WithXStep(step),
		osl.WithTimeStep(tStep),
		osl.WithSeed(seed),
		osl.WithProgress(progress(frames, "looping animated closed 1D curve")),
	)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "looping_animated_closed_1D_curve.png")
	if err := writePNG(path, upscale(grayImage(grid), scale)); err != nil {
		return err
	}
	log.Printf("wrote %s (%d frames of %d points)", path, frames, pixels)
	return nil
}

// progress returns a ProgressFunc backed by a terminal progress bar.
func progress(total int, label string) osl.ProgressFunc {
	bar := progressbar.Default(int64(total), label)
	return func(done, _ int) {
		_ = bar.Set(done)
	}
}

// grayImage maps noise values in [-1, 1] onto 8-bit grayscale via v*127+128.
func grayImage(g *osl.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for i, v := range g.Float64s() {
		img.Pix[i] = uint8(v*127 + 128)
	}
	return img
}

// upscale resizes img by an integer factor with bilinear interpolation.
func upscale(img *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// palettedFrame converts a grayscale frame to the 256-gray palette GIF needs.
func palettedFrame(img *image.Gray) *image.Paletted {
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.Gray{Y: uint8(i)}
	}
	p := image.NewPaletted(img.Bounds(), palette)
	copy(p.Pix, img.Pix) // palette index i is gray level i
	return p
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}
