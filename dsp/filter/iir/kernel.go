package iir

import "github.com/cwbudde/algo-kernels/dsp/kernel"

// Ports of the mono layout; the stereo layout repeats them for the right
// channel at ids 3-5.
const (
	PortCoef kernel.PortID = iota
	PortInput
	PortOutput
	PortCoefRight
	PortInputRight
	PortOutputRight
)

var monoPorts = []kernel.PortInfo{
	{ID: PortCoef, Name: "Coefficient", Kind: kernel.Control, Hint: kernel.Hint{
		Lower: -MaxCoefficient, Upper: MaxCoefficient, Default: kernel.DefaultZero,
	}},
	{ID: PortInput, Name: "Input", Kind: kernel.AudioIn},
	{ID: PortOutput, Name: "Output", Kind: kernel.AudioOut},
}

// MonoDescriptor describes the single-channel one-pole kernel.
func MonoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654323,
		Label:     "iir_mono",
		Name:      "One-pole IIR filter (mono)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  1,
		Ports:     append([]kernel.PortInfo(nil), monoPorts...),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// StereoDescriptor describes the two-channel one-pole kernel.
func StereoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654324,
		Label:     "iir_stereo",
		Name:      "One-pole IIR filter (stereo)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  2,
		Ports:     kernel.StereoPorts(monoPorts),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// Kernel adapts per-channel filters to the kernel lifecycle. It holds no
// buffers, only one retained sample per channel.
type Kernel struct {
	ch [kernel.MaxChannels]Filter
}

// Activate implements kernel.Kernel.
func (k *Kernel) Activate(_ float64, _ int) error {
	for c := range k.ch {
		k.ch[c] = Filter{gain: 1}
	}
	return nil
}

// Process implements kernel.Kernel.
func (k *Kernel) Process(b *kernel.Block) {
	for c := 0; c < b.Channels; c++ {
		f := &k.ch[c]
		ch := &b.Ch[c]
		f.SetCoefficient(ch.Controls[0])
		f.ProcessBlockTo(ch.Out, ch.In)
	}
}

// Deactivate implements kernel.Kernel.
func (k *Kernel) Deactivate() {}
