package comb

import "github.com/cwbudde/algo-kernels/dsp/kernel"

// Ports of the mono layout. The stereo layout appends the same four ports
// for the right channel at ids 4-7.
const (
	PortDelay kernel.PortID = iota
	PortSharpness
	PortInput
	PortOutput
	PortDelayRight
	PortSharpnessRight
	PortInputRight
	PortOutputRight
)

const (
	slotDelay = iota
	slotSharpness
)

var monoPorts = []kernel.PortInfo{
	{ID: PortDelay, Name: "Delay", Kind: kernel.Control, Slot: slotDelay, Hint: kernel.Hint{
		Lower: MinDelay, Upper: MaxDelay, Integer: true, Default: kernel.DefaultMiddle,
	}},
	{ID: PortSharpness, Name: "Sharpness", Kind: kernel.Control, Slot: slotSharpness, Hint: kernel.Hint{
		Lower: MinSharpness, Upper: MaxSharpness, Default: kernel.DefaultHigh,
	}},
	{ID: PortInput, Name: "Input", Kind: kernel.AudioIn},
	{ID: PortOutput, Name: "Output", Kind: kernel.AudioOut},
}

// MonoDescriptor describes the single-channel comb kernel.
func MonoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x00654329,
		Label:     "comb_mono",
		Name:      "Comb filter (mono)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  1,
		Ports:     append([]kernel.PortInfo(nil), monoPorts...),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// StereoDescriptor describes the two-channel comb kernel with independent
// parameters per channel.
func StereoDescriptor() *kernel.Descriptor {
	return &kernel.Descriptor{
		UniqueID:  0x0065432A,
		Label:     "comb_stereo",
		Name:      "Comb filter (stereo)",
		Maker:     "Andreas Jansson",
		Copyright: "GPL-3.0",
		RealTime:  true,
		Channels:  2,
		Ports:     kernel.StereoPorts(monoPorts),
		New:       func() kernel.Kernel { return &Kernel{} },
	}
}

// Kernel adapts per-channel filters to the kernel lifecycle.
type Kernel struct {
	ch [kernel.MaxChannels]*Filter
}

// Activate implements kernel.Kernel.
func (k *Kernel) Activate(_ float64, channels int) error {
	for c := range k.ch {
		switch {
		case c >= channels:
			k.ch[c] = nil
		case k.ch[c] == nil:
			f, err := New()
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
		f.SetDelay(ch.Controls[slotDelay])
		f.SetSharpness(ch.Controls[slotSharpness])
		f.ProcessBlockTo(ch.Out, ch.In)
	}
}

// Deactivate implements kernel.Kernel.
func (k *Kernel) Deactivate() {
	for c := range k.ch {
		k.ch[c] = nil
	}
}
