package reson

import "github.com/cwbudde/algo-kernels/dsp/kernel"

// Ports of the mono layout. The stereo layout appends the same four ports
// for the right channel at ids 4-7.
const (
	PortFreq kernel.PortID = iota
	PortBandwidth
	PortInput
	PortOutput
	PortFreqRight
	PortBandwidthRight
	PortInputRight
	PortOutputRight
)

const (
	slotFreq = iota
	slotBandwidth
)

var monoPorts = []kernel.PortInfo{
	{ID: PortFreq, Name: "Frequency", Kind: kernel.Control, Slot: slotFreq, Hint: kernel.Hint{
		Lower: MinFreq, Upper: MaxFreq, Logarithmic: true, Integer: true, Default: kernel.DefaultLow,
	}},
	{ID: PortBandwidth, Name: "Bandwidth", Kind: kernel.Control, Slot: slotBandwidth, Hint: kernel.Hint{
		Lower: MinBandwidth, Upper: MaxBandwidth, Logarithmic: true, Integer: true, Default: kernel.DefaultLow,
	}},
	{ID: PortInput, Name: "Input", Kind: kernel.AudioIn},
	{ID: PortOutput, Name: "Output", Kind: kernel.AudioOut},
}

// MonoDescriptor describes the single-channel resonator.
func MonoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654325,
		Label:     "reson_mono",
		Name:      "Two-pole reson filter (mono)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  1,
		Ports:     append([]kernel.PortInfo(nil), monoPorts...),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// StereoDescriptor describes the two-channel resonator.
func StereoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654326,
		Label:     "reson_stereo",
		Name:      "Two-pole reson filter (stereo)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  2,
		Ports:     kernel.StereoPorts(monoPorts),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// Kernel adapts per-channel resonators to the kernel lifecycle.
type Kernel struct {
	ch [kernel.MaxChannels]*Filter
}

// Activate implements kernel.Kernel.
func (k *Kernel) Activate(sampleRate float64, channels int) error {
	for c := range k.ch {
		if c >= channels {
			k.ch[c] = nil
			continue
		}
		f, err := New(sampleRate)
		if err != nil {
			return err
		}
		k.ch[c] = f
	}
	return nil
}

// Process implements kernel.Kernel.
func (k *Kernel) Process(b *kernel.Block) {
	for c := 0; c < b.Channels; c++ {
		f := k.ch[c]
		ch := &b.Ch[c]
		f.SetParams(ch.Controls[slotFreq], ch.Controls[slotBandwidth])
		f.ProcessBlockTo(ch.Out, ch.In)
	}
}

// Deactivate implements kernel.Kernel.
func (k *Kernel) Deactivate() {
	for c := range k.ch {
		k.ch[c] = nil
	}
}
