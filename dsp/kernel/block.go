package kernel

const (
	// MaxChannels is the widest supported channel layout (stereo).
	MaxChannels = 2
	// MaxControls is the number of control slots per channel.
	MaxControls = 2
)

// Channel carries one channel's view of a block.
type Channel struct {
	In       []float64
	Out      []float64
	Controls [MaxControls]float64
}

// Block is the per-call view handed to [Kernel.Process]. Its slices are
// valid only for the duration of that call.
type Block struct {
	Frames   int
	Channels int
	Ch       [MaxChannels]Channel
}

// Control returns control slot of channel ch.
func (b *Block) Control(ch, slot int) float64 {
	return b.Ch[ch].Controls[slot]
}

// Kernel is the per-type signal processing implementation driven by an
// [Instance].
type Kernel interface {
	// Activate allocates and zeroes all state for the given channel count.
	// It is also called to reset an already active kernel.
	Activate(sampleRate float64, channels int) error
	// Process renders b.Frames frames for every channel in b.
	// It must not allocate, block or retain the slices in b.
	Process(b *Block)
	// Deactivate releases buffers allocated by Activate.
	Deactivate()
}
