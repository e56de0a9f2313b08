package fir

import "github.com/cwbudde/algo-kernels/dsp/kernel"

// Ports of the mono layout; the stereo layout repeats them for the right
// channel at ids 4-7.
const (
	PortFreq kernel.PortID = iota
	PortWet
	PortInput
	PortOutput
	PortFreqRight
	PortWetRight
	PortInputRight
	PortOutputRight
)

const (
	slotFreq = iota
	slotWet
)

var monoPorts = []kernel.PortInfo{
	{ID: PortFreq, Name: "First frequency", Kind: kernel.Control, Slot: slotFreq, Hint: kernel.Hint{
		Lower: LowestFreq, Upper: MaxFreq, Logarithmic: true, Integer: true, Default: kernel.DefaultLow,
	}},
	{ID: PortWet, Name: "Dry/Wet", Kind: kernel.Control, Slot: slotWet, Hint: kernel.Hint{
		Lower: 0, Upper: 1, Default: kernel.DefaultZero,
	}},
	{ID: PortInput, Name: "Input", Kind: kernel.AudioIn},
	{ID: PortOutput, Name: "Output", Kind: kernel.AudioOut},
}

// MonoDescriptor describes the single-channel FIR kernel.
func MonoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654321,
		Label:     "fir_mono",
		Name:      "One-term FIR filter (mono)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  1,
		Ports:     append([]kernel.PortInfo(nil), monoPorts...),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// StereoDescriptor describes the two-channel FIR kernel. Each channel has
// its own frequency, wet amount and history.
func StereoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654322,
		Label:     "fir_stereo",
		Name:      "One-term FIR filter (stereo)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  2,
		Ports:     kernel.StereoPorts(monoPorts),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// Kernel adapts per-channel filters to the kernel lifecycle. The channel
// cursors advance in lockstep, which is the same as sharing one cursor.
type Kernel struct {
	ch [kernel.MaxChannels]*Filter
}

// Activate implements kernel.Kernel.
func (k *Kernel) Activate(sampleRate float64, channels int) error {
	for c := range k.ch {
		switch {
		case c >= channels:
			k.ch[c] = nil
		case k.ch[c] == nil:
			f, err := New(sampleRate)
			if err != nil {
				return err
			}
			k.ch[c] = f
		default:
			k.ch[c].Reset()
		}
	}
	return nil
}

// Process implements kernel.Kernel.
func (k *Kernel) Process(b *kernel.Block) {
	for c := 0; c < b.Channels; c++ {
		f := k.ch[c]
		ch := &b.Ch[c]
		f.SetFrequency(ch.Controls[slotFreq])
		f.SetWet(ch.Controls[slotWet])
		f.ProcessBlockTo(ch.Out, ch.In)
	}
}

// Deactivate implements kernel.Kernel.
func (k *Kernel) Deactivate() {
	for c := range k.ch {
		k.ch[c] = nil
	}
}
