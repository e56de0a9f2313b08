package iir

import (
	"math"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
)

// MaxCoefficient bounds |c|.
const MaxCoefficient = 0.99999

// Filter is a single-channel one-pole filter.
type Filter struct {
	coef  float64
	gain  float64
	state float64
}

// New returns a pass-through filter (coefficient 0).
func New() *Filter {
	return &Filter{gain: 1}
}

// SetCoefficient sets the pole position, clamped to [-MaxCoefficient, MaxCoefficient].
func (f *Filter) SetCoefficient(c float64) {
	f.coef = core.Clamp(c, -MaxCoefficient, MaxCoefficient)
	f.gain = 1 - math.Abs(f.coef)
}

// Coefficient returns the effective coefficient.
func (f *Filter) Coefficient() float64 { return f.coef }

// Biquad returns the equivalent second-order section, y = g*x - A1*y[n-1]
// with g = 1-|c| and A1 = -c.
func (f *Filter) Biquad() biquad.Coefficients {
	return biquad.Coefficients{B0: f.gain, A1: -f.coef}
}

// State returns the retained previous output.
func (f *Filter) State() float64 { return f.state }

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := x*f.gain + f.state*f.coef
	f.state = y
	return y
}

// ProcessBlockTo filters src into dst. Only min(len(dst), len(src)) samples
// are processed. dst and src may be the same slice.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	gain, coef, y := f.gain, f.coef, f.state
	for i := 0; i < n; i++ {
		y = src[i]*gain + y*coef
		dst[i] = y
	}
	f.state = y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// Reset clears the retained output.
func (f *Filter) Reset() {
	f.state = 0
}
