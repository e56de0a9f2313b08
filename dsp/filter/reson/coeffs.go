package reson

import (
	"math"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
)

// Parameter bounds published on the control ports. Values outside them are
// passed through to the coefficient formula unchanged.
const (
	MinFreq      = 20.0
	MaxFreq      = 20000.0
	MinBandwidth = 1.0
	MaxBandwidth = 20000.0
)

// Coeffs are the derived filter coefficients for one block.
type Coeffs struct {
	Radius float64
	Angle  float64
	Gain   float64
}

// A1 returns the first feedback coefficient 2r*cos(theta).
func (c Coeffs) A1() float64 { return 2 * c.Radius * math.Cos(c.Angle) }

// A2 returns the second feedback coefficient r^2.
func (c Coeffs) A2() float64 { return c.Radius * c.Radius }

// Biquad returns the equivalent second-order section.
func (c Coeffs) Biquad() biquad.Coefficients {
	return biquad.Coefficients{B0: c.Gain, A1: -c.A1(), A2: c.A2()}
}

// Coefficients derives pole radius, pole angle and gain from a centre
// frequency and bandwidth in Hz. A NaN or non-positive bandwidth is treated
// as MinBandwidth. The acos argument is clamped to [-1, 1]. Nothing else is
// limited, so a bandwidth above 2*sampleRate/pi yields |r| > 1.
func Coefficients(freq, bw, sampleRate float64) Coeffs {
	if !(bw > 0) {
		bw = MinBandwidth
	}

	r := 1 - math.Pi*bw/sampleRate
	r2 := r * r

	arg := core.Clamp((2*r/(1+r2))*math.Cos(2*math.Pi*freq/sampleRate), -1, 1)
	angle := math.Acos(arg)

	return Coeffs{
		Radius: r,
		Angle:  angle,
		Gain:   (1 - r2) * math.Sin(angle),
	}
}
