package osl

import "math"

// circle embeds a periodic output axis into a pair of noise dimensions.
// An axis with count samples spaced step apart is traced as a circle whose
// circumference is count*step, so consecutive samples keep the requested
// arc-length spacing and sample count lands back on sample 0.
type circle struct {
	radius float64
	count  int
}

// newCircle derives the embedding for a periodic axis. The radius formula
// count*step/(2π) holds for count == 1 as well (one sample at angle 0 on a
// circle of radius step/(2π)); the degenerate case is intentionally not
// special-cased.
func newCircle(count int, step float64) circle {
	return circle{
		radius: float64(count) * step / (2 * math.Pi),
		count:  count,
	}
}

// angle returns θ_i = 2π·i/count. Indices 0..count-1 map to distinct angles
// on [0, 2π); index count lands on 2π, the wrap point.
func (c circle) angle(i int) float64 {
	return 2 * math.Pi * float64(i) / float64(c.count)
}

// at returns the pair of noise coordinates of sample i.
func (c circle) at(i int) (u, v float64) {
	t := c.angle(i)
	return c.radius * math.Cos(t), c.radius * math.Sin(t)
}

// table precomputes the coordinates of all count samples. Used when the same
// circle is revisited for every unit of an outer axis.
func (c circle) table() (u, v []float64) {
	u = make([]float64, c.count)
	v = make([]float64, c.count)
	for i := range u {
		u[i], v[i] = c.at(i)
	}
	return u, v
}
