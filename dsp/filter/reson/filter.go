package reson

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
)

// Filter is a single-channel two-pole resonator.
type Filter struct {
	sampleRate float64
	freq, bw   float64

	gain, a1, a2 float64
	h0, h1       float64
}

// New returns a resonator at the lowest centre frequency and narrowest
// bandwidth.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("reson: sample rate must be positive and finite: %v", sampleRate)
	}
	f := &Filter{sampleRate: sampleRate, freq: math.NaN()}
	f.SetParams(MinFreq, MinBandwidth)
	return f, nil
}

// SetParams updates centre frequency and bandwidth. Coefficients are only
// recomputed when a value changes.
func (f *Filter) SetParams(freq, bw float64) {
	if freq == f.freq && bw == f.bw {
		return
	}
	f.freq, f.bw = freq, bw

	c := Coefficients(freq, bw, f.sampleRate)
	f.gain = c.Gain
	f.a1 = c.A1()
	f.a2 = c.A2()
}

// Frequency returns the last requested centre frequency.
func (f *Filter) Frequency() float64 { return f.freq }

// Bandwidth returns the last requested bandwidth.
func (f *Filter) Bandwidth() float64 { return f.bw }

// Gain returns the current input gain.
func (f *Filter) Gain() float64 { return f.gain }

// Biquad returns the second-order section for the current coefficients.
func (f *Filter) Biquad() biquad.Coefficients {
	return biquad.Coefficients{B0: f.gain, A1: -f.a1, A2: f.a2}
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.gain*x + f.a1*f.h0 - f.a2*f.h1
	f.h1 = f.h0
	f.h0 = y
	return y
}

// ProcessBlockTo filters src into dst. Only min(len(dst), len(src)) samples
// are processed. dst and src may be the same slice.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	g, a1, a2 := f.gain, f.a1, f.a2
	h0, h1 := f.h0, f.h1
	for i := 0; i < n; i++ {
		y := g*src[i] + a1*h0 - a2*h1
		h1 = h0
		h0 = y
		dst[i] = y
	}
	f.h0, f.h1 = h0, h1
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// Reset clears the two retained outputs.
func (f *Filter) Reset() {
	f.h0, f.h1 = 0, 0
}
