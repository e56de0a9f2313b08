package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-kernels/dsp/filter/biquad/internal/arch/registry"
)

// Coefficients holds one normalised second-order transfer function.
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward
	A1, A2     float64 // feedback
}

// Section is a biquad with its two state variables.
type Section struct {
	Coefficients

	d0, d1 float64
}

var (
	blockImpl registry.ProcessBlockFn
	blockName string
	blockOnce sync.Once
)

// NewSection returns a Section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place with the backend selected for this CPU.
func (s *Section) ProcessBlock(buf []float64) {
	blockOnce.Do(selectBackend)
	c := registry.Coefficients{B0: s.B0, B1: s.B1, B2: s.B2, A1: s.A1, A2: s.A2}
	s.d0, s.d1 = blockImpl(c, s.d0, s.d1, buf)
}

// ProcessBlockTo filters src into dst. Only min(len(dst), len(src)) samples
// are processed.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = s.ProcessSample(src[i])
	}
}

// Reset clears the state.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a state returned by State.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}

// Backend names the ProcessBlock implementation chosen for this CPU.
func Backend() string {
	blockOnce.Do(selectBackend)
	return blockName
}

func selectBackend() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil || entry.ProcessBlock == nil {
		panic("biquad: no ProcessBlock backend registered")
	}
	blockImpl = entry.ProcessBlock
	blockName = entry.Name
}
