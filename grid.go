package osl

// Grid is a dense row-major 2D buffer of noise values.
//
// For [Tileable2DImage] rows are y-pixels and columns are x-pixels. For
// [LoopingAnimatedClosed1DCurve] rows are time frames and columns are curve
// points.
type Grid struct {
	width  int
	height int
	data   []float64
}

func newGrid(height, width int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the value at row y, column x.
func (g *Grid) At(y, x int) float64 {
	return g.data[y*g.width+x]
}

// row returns the backing slice of row y.
func (g *Grid) row(y int) []float64 {
	return g.data[y*g.width : (y+1)*g.width]
}

// Float64s returns the backing data in row-major order. The slice is shared
// with the Grid, not copied.
func (g *Grid) Float64s() []float64 {
	return g.data
}

// Float32s returns a single-precision copy of the data in row-major order.
// The conversion is a pure elementwise cast; values stay within [-1, 1] up
// to float32 rounding.
func (g *Grid) Float32s() []float32 {
	out := make([]float32, len(g.data))
	for i, v := range g.data {
		out[i] = float32(v)
	}
	return out
}

// Stack is a dense 3D buffer of noise values laid out as frames of equal
// size, [frame][row][column].
type Stack struct {
	frames int
	width  int
	height int
	data   []float64
}

func newStack(frames, height, width int) *Stack {
	return &Stack{
		frames: frames,
		width:  width,
		height: height,
		data:   make([]float64, frames*width*height),
	}
}

// Frames returns the number of frames.
func (s *Stack) Frames() int {
	return s.frames
}

// Width returns the number of columns per frame.
func (s *Stack) Width() int {
	return s.width
}

// Height returns the number of rows per frame.
func (s *Stack) Height() int {
	return s.height
}

// At returns the value at frame f, row y, column x.
func (s *Stack) At(f, y, x int) float64 {
	return s.data[(f*s.height+y)*s.width+x]
}

// Frame returns frame f as a Grid view. The view shares memory with the
// Stack; it is not a copy.
func (s *Stack) Frame(f int) *Grid {
	n := s.width * s.height
	return &Grid{
		width:  s.width,
		height: s.height,
		data:   s.data[f*n : (f+1)*n],
	}
}

// row returns the backing slice of row y in frame f.
func (s *Stack) row(f, y int) []float64 {
	off := (f*s.height + y) * s.width
	return s.data[off : off+s.width]
}

// Float64s returns the backing data in frame-major order. The slice is
// shared with the Stack, not copied.
func (s *Stack) Float64s() []float64 {
	return s.data
}

// Float32s returns a single-precision copy of the data in frame-major order.
// The conversion is a pure elementwise cast; values stay within [-1, 1] up
// to float32 rounding.
func (s *Stack) Float32s() []float32 {
	out := make([]float32, len(s.data))
	for i, v := range s.data {
		out[i] = float32(v)
	}
	return out
}
