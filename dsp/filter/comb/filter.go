package comb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/dsp/delay"
)

const (
	// MaxDelay is the history length and the largest delay in samples.
	MaxDelay = 100
	// MinDelay is the smallest delay in samples.
	MinDelay = 1

	MinSharpness = 0.5
	MaxSharpness = 1.0
)

// Filter is a single-channel comb filter.
type Filter struct {
	line      *delay.Line
	delay     int
	sharpness float64

	// derived once per parameter change
	feedback float64
	direct   float64
}

// New returns a filter with a zeroed history of MaxDelay samples.
func New() (*Filter, error) {
	line, err := delay.New(MaxDelay)
	if err != nil {
		return nil, fmt.Errorf("comb history: %w", err)
	}
	f := &Filter{line: line, delay: MinDelay, sharpness: MaxSharpness}
	f.update()
	return f, nil
}

// SetDelay sets the delay from a control value. The value is truncated
// toward zero and clamped to [MinDelay, MaxDelay].
func (f *Filter) SetDelay(delay float64) {
	d := core.TruncateInt(delay, MinDelay, MaxDelay)
	if d == f.delay {
		return
	}
	f.delay = d
	f.update()
}

// SetSharpness sets the feedback base, clamped to [MinSharpness, MaxSharpness].
func (f *Filter) SetSharpness(sharpness float64) {
	s := core.Clamp(sharpness, MinSharpness, MaxSharpness)
	if s == f.sharpness {
		return
	}
	f.sharpness = s
	f.update()
}

func (f *Filter) update() {
	f.feedback = math.Pow(f.sharpness, float64(f.delay))
	f.direct = 1 - f.feedback
}

// Delay returns the effective delay in samples.
func (f *Filter) Delay() int { return f.delay }

// Sharpness returns the effective sharpness.
func (f *Filter) Sharpness() float64 { return f.sharpness }

// Feedback returns sharpness^delay.
func (f *Filter) Feedback() float64 { return f.feedback }

// ProcessSample filters one sample. The cursor is not rewound between
// blocks, so splitting a signal into blocks does not change the output.
func (f *Filter) ProcessSample(x float64) float64 {
	y := x*f.direct + f.feedback*f.line.Current()
	f.line.WriteAhead(f.delay, y)
	f.line.Advance()
	return y
}

// ProcessBlockTo filters src into dst. Only min(len(dst), len(src)) samples
// are processed. dst and src may be the same slice.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = f.ProcessSample(src[i])
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
