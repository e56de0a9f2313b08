package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/dsp/delay"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// MinFreq is the lowest first-notch frequency the history is sized for.
	MinFreq = 1.0
	// MaxFreq is the published upper bound of the frequency control.
	MaxFreq = 20000.0
	// LowestFreq is the published lower bound of the frequency control.
	LowestFreq = 20.0

	// mixChunk bounds the scratch used for block-wise mixing.
	mixChunk = 256
)

// HistoryLength returns the delay line length for sampleRate.
func HistoryLength(sampleRate float64) int {
	return int(sampleRate / (2 * MinFreq))
}

// Shift returns the tap offset in samples for freq at sampleRate.
// Non-positive or NaN frequencies fall back to MinFreq.
func Shift(freq, sampleRate float64) int {
	if !(freq > 0) {
		freq = MinFreq
	}
	s := math.Floor(sampleRate / (2 * freq))
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(s)
}

// Filter is a single-channel one-term FIR filter.
type Filter struct {
	sampleRate float64
	line       *delay.Line
	shift      int
	freq       float64
	wet        float64
	scratch    []float64
}

// New returns a filter for sampleRate with a zeroed history of
// HistoryLength(sampleRate) samples.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("fir sample rate must be > 0: %f", sampleRate)
	}
	line, err := delay.New(HistoryLength(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("fir history for sample rate %f: %w", sampleRate, err)
	}
	f := &Filter{
		sampleRate: sampleRate,
		line:       line,
		scratch:    core.EnsureLen(nil, mixChunk),
	}
	f.SetFrequency(LowestFreq)
	return f, nil
}

// SetFrequency sets the first-notch frequency in Hz. The resulting shift is
// reduced modulo the history length.
func (f *Filter) SetFrequency(freq float64) {
	f.freq = freq
	f.shift = Shift(freq, f.sampleRate) % f.line.Len()
}

// SetWet sets the dry/wet amount, clamped to [0, 1].
func (f *Filter) SetWet(wet float64) {
	f.wet = core.Clamp(wet, 0, 1)
}

// Frequency returns the last frequency set.
func (f *Filter) Frequency() float64 { return f.freq }

// Wet returns the dry/wet amount.
func (f *Filter) Wet() float64 { return f.wet }

// ShiftSamples returns the effective tap offset, already reduced modulo
// the history length.
func (f *Filter) ShiftSamples() int { return f.shift }

// HistoryLen returns the delay line length.
func (f *Filter) HistoryLen() int { return f.line.Len() }

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.line.WriteAhead(f.shift, x)
	tap := f.line.Current()
	f.line.Advance()
	return x*(1-f.wet/2) + tap*(f.wet/2)
}

// ProcessBlockTo filters src into dst. Only min(len(dst), len(src)) samples
// are processed. dst and src may be the same slice. With a wet amount of 0
// the output is bit-identical to the input.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	dry := 1 - f.wet/2
	wet := f.wet / 2

	for start := 0; start < n; start += len(f.scratch) {
		end := min(start+len(f.scratch), n)
		x := src[start:end]
		y := dst[start:end]
		tap := f.scratch[:end-start]

		for i, v := range x {
			f.line.WriteAhead(f.shift, v)
			tap[i] = f.line.Current()
			f.line.Advance()
		}

		if wet == 0 {
			copy(y, x)
			continue
		}
		vecmath.ScaleBlockInPlace(tap, wet)
		vecmath.ScaleBlock(y, x, dry)
		vecmath.AddBlockInPlace(y, tap)
	}
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// Reset clears the history and rewinds the cursor.
func (f *Filter) Reset() {
	f.line.Reset()
}
