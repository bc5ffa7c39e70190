package osl

import "testing"

func TestGrid_Layout(t *testing.T) {
	g := newGrid(3, 4)
	if g.Height() != 3 || g.Width() != 4 {
		t.Fatalf("shape = %dx%d, want 3x4", g.Height(), g.Width())
	}
	if len(g.Float64s()) != 12 {
		t.Fatalf("len(data) = %d, want 12", len(g.Float64s()))
	}

	// Row-major: element (y, x) lives at y*width + x.
	g.Float64s()[2*4+1] = 0.25
	if got := g.At(2, 1); got != 0.25 {
		t.Errorf("At(2, 1) = %v, want 0.25", got)
	}
	if got := g.row(2)[1]; got != 0.25 {
		t.Errorf("row(2)[1] = %v, want 0.25", got)
	}
}

func TestStack_Layout(t *testing.T) {
	s := newStack(2, 3, 4)
	if s.Frames() != 2 || s.Height() != 3 || s.Width() != 4 {
		t.Fatalf("shape = %dx%dx%d, want 2x3x4", s.Frames(), s.Height(), s.Width())
	}
	if len(s.Float64s()) != 24 {
		t.Fatalf("len(data) = %d, want 24", len(s.Float64s()))
	}

	s.Float64s()[(1*3+2)*4+3] = -0.5
	if got := s.At(1, 2, 3); got != -0.5 {
		t.Errorf("At(1, 2, 3) = %v, want -0.5", got)
	}
}

func TestStack_FrameIsView(t *testing.T) {
	s := newStack(2, 2, 2)
	f1 := s.Frame(1)
	if f1.Height() != 2 || f1.Width() != 2 {
		t.Fatalf("frame shape = %dx%d, want 2x2", f1.Height(), f1.Width())
	}

	// Writing through the view must be visible in the stack: Frame shares
	// memory, it does not copy.
	f1.Float64s()[3] = 0.75
	if got := s.At(1, 1, 1); got != 0.75 {
		t.Errorf("At(1, 1, 1) = %v, want 0.75 after writing via Frame(1)", got)
	}
}

func TestFloat32s_IsPureCast(t *testing.T) {
	g := newGrid(2, 3)
	vals := []float64{-1, -0.123456789123456789, 0, 1.0 / 3, 0.999999999999, 1}
	copy(g.Float64s(), vals)

	got := g.Float32s()
	if len(got) != len(vals) {
		t.Fatalf("len = %d, want %d", len(got), len(vals))
	}
	for i, v := range vals {
		if got[i] != float32(v) {
			t.Errorf("Float32s()[%d] = %v, want %v", i, got[i], float32(v))
		}
	}
}
