package buffer

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/dsp/core"
)

// Errors returned by PCM conversion.
var (
	ErrChannels = errors.New("buffer: channel count must be positive")
	ErrBitDepth = errors.New("buffer: bit depth must be 16, 24 or 32")
	ErrShortPCM = errors.New("buffer: destination shorter than frames*channels")
)

// Planar is multichannel audio stored channel by channel. All channels have
// the same length.
type Planar struct {
	ch [][]float64
}

// New returns a zero-filled buffer. Negative sizes are treated as zero.
func New(channels, frames int) *Planar {
	channels = max(channels, 0)
	frames = max(frames, 0)
	p := &Planar{ch: make([][]float64, channels)}
	backing := make([]float64, channels*frames)
	for c := range p.ch {
		p.ch[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}
	return p
}

// Channels returns the channel count.
func (p *Planar) Channels() int { return len(p.ch) }

// Frames returns the number of frames per channel.
func (p *Planar) Frames() int {
	if len(p.ch) == 0 {
		return 0
	}
	return len(p.ch[0])
}

// Channel returns the samples of channel c. The slice aliases the buffer.
func (p *Planar) Channel(c int) []float64 { return p.ch[c] }

// Zero clears every channel.
func (p *Planar) Zero() {
	for _, c := range p.ch {
		core.Zero(c)
	}
}

// FullScale returns the magnitude that maps to 1.0 for a PCM bit depth.
func FullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}
}

// FromPCM deinterleaves signed integer PCM into a new buffer scaled to
// [-1, 1). A trailing partial frame is dropped.
func FromPCM(data []int, channels, bitDepth int) (*Planar, error) {
	if channels < 1 {
		return nil, ErrChannels
	}
	scale, err := FullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	frames := len(data) / channels
	p := New(channels, frames)
	inv := 1 / scale
	for c, samples := range p.ch {
		for i := range samples {
			samples[i] = float64(data[i*channels+c]) * inv
		}
	}
	return p, nil
}

// ToPCM interleaves the buffer into dst as signed integer PCM. Samples are
// rounded and saturate at the limits of the bit depth. NaN maps to the
// negative limit.
func (p *Planar) ToPCM(dst []int, bitDepth int) error {
	scale, err := FullScale(bitDepth)
	if err != nil {
		return err
	}
	channels := len(p.ch)
	if len(dst) < channels*p.Frames() {
		return ErrShortPCM
	}

	lo, hi := -scale, scale-1
	for c, samples := range p.ch {
		for i, v := range samples {
			dst[i*channels+c] = int(core.Clamp(math.Round(v*scale), lo, hi))
		}
	}
	return nil
}
