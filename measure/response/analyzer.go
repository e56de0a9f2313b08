package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/dsp/core"
)

// Bin is one bin of a magnitude response.
type Bin struct {
	Freq      float64 // centre frequency in Hz
	Magnitude float64 // linear magnitude
	DB        float64 // magnitude in dB, -Inf for silence
}

// Analyzer turns impulse responses into magnitude responses. It caches the
// FFT plan for the last size used and is not safe for concurrent use.
type Analyzer struct {
	cfg core.ProcessorConfig

	size     int
	plan     *algofft.Plan[complex128]
	spectrum []complex128
	re       []float64
	im       []float64
}

// NewAnalyzer creates an analyzer. WithSampleRate sets the rate used for bin
// frequencies. WithBlockSize sets the minimum FFT size.
func NewAnalyzer(opts ...core.ProcessorOption) *Analyzer {
	return &Analyzer{cfg: core.ApplyProcessorOptions(opts...)}
}

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.cfg.SampleRate }

// FFTSize returns the transform size used for an impulse response of n samples.
func (a *Analyzer) FFTSize(n int) int {
	return core.NextPowerOf2(max(n, a.cfg.BlockSize))
}

// Magnitude zero-pads ir to FFTSize(len(ir)) and returns bins 0..N/2.
func (a *Analyzer) Magnitude(ir []float64) ([]Bin, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}
	if !(a.cfg.SampleRate > 0) {
		return nil, ErrInvalidSampleRate
	}

	n := a.FFTSize(len(ir))
	if err := a.prepare(n); err != nil {
		return nil, err
	}

	for i := range a.spectrum {
		a.spectrum[i] = 0
	}
	for i, v := range ir {
		a.spectrum[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.spectrum, a.spectrum); err != nil {
		return nil, fmt.Errorf("response: forward transform: %w", err)
	}

	half := n/2 + 1
	for k := 0; k < half; k++ {
		a.re[k] = real(a.spectrum[k])
		a.im[k] = imag(a.spectrum[k])
	}
	mags := make([]float64, half)
	vecmath.Magnitude(mags, a.re[:half], a.im[:half])

	bins := make([]Bin, half)
	step := a.cfg.SampleRate / float64(n)
	for k, m := range mags {
		bins[k] = Bin{Freq: float64(k) * step, Magnitude: m, DB: core.LinearToDB(m)}
	}
	return bins, nil
}

// MagnitudeAt returns the bin nearest to freqHz. Frequencies outside
// [0, SampleRate/2] select the first or last bin.
func (a *Analyzer) MagnitudeAt(ir []float64, freqHz float64) (Bin, error) {
	bins, err := a.Magnitude(ir)
	if err != nil {
		return Bin{}, err
	}
	return NearestBin(bins, freqHz), nil
}

// NearestBin picks the bin closest to freqHz from evenly spaced bins that
// start at 0 Hz, as returned by Magnitude.
func NearestBin(bins []Bin, freqHz float64) Bin {
	switch len(bins) {
	case 0:
		return Bin{}
	case 1:
		return bins[0]
	}
	k := int(math.Round(freqHz / bins[1].Freq))
	return bins[core.ClampInt(k, 0, len(bins)-1)]
}

func (a *Analyzer) prepare(n int) error {
	if a.plan != nil && a.size == n {
		return nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("response: failed to create FFT plan: %w", err)
	}
	a.plan = plan
	a.size = n
	a.spectrum = make([]complex128, n)
	a.re = core.EnsureLen(a.re, n/2+1)
	a.im = core.EnsureLen(a.im, n/2+1)
	return nil
}

// Peak returns the largest absolute sample value of x.
func Peak(x []float64) float64 {
	return vecmath.MaxAbs(x)
}
