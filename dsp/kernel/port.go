package kernel

import "math"

// PortID identifies a port within one descriptor.
type PortID int

// PortKind classifies a port.
type PortKind uint8

const (
	// Control ports carry one value read once per block.
	Control PortKind = iota
	// AudioIn ports carry one input sample per frame.
	AudioIn
	// AudioOut ports receive one output sample per frame.
	AudioOut
)

func (k PortKind) String() string {
	switch k {
	case Control:
		return "control"
	case AudioIn:
		return "audio-in"
	case AudioOut:
		return "audio-out"
	default:
		return "unknown"
	}
}

// DefaultHint selects how a host derives a control's initial value from its
// bounds.
type DefaultHint uint8

const (
	DefaultNone DefaultHint = iota
	DefaultMinimum
	DefaultLow
	DefaultMiddle
	DefaultHigh
	DefaultMaximum
	DefaultZero
	DefaultOne
)

// Hint publishes the numeric range of a control port.
type Hint struct {
	Lower       float64
	Upper       float64
	Logarithmic bool
	Integer     bool
	Default     DefaultHint
}

// DefaultValue resolves the default hint against the bounds. Low and high
// sit a quarter of the way in from the nearest bound, measured on a log scale
// when the hint is logarithmic.
func (h Hint) DefaultValue() float64 {
	var v float64
	switch h.Default {
	case DefaultMinimum:
		v = h.Lower
	case DefaultLow:
		v = h.interpolate(0.25)
	case DefaultMiddle:
		v = h.interpolate(0.5)
	case DefaultHigh:
		v = h.interpolate(0.75)
	case DefaultMaximum:
		v = h.Upper
	case DefaultOne:
		return 1
	default:
		return 0
	}

	if h.Integer {
		v = math.Round(v)
	}
	return v
}

// Clamp limits v to the hinted bounds.
func (h Hint) Clamp(v float64) float64 {
	if v < h.Lower || math.IsNaN(v) {
		return h.Lower
	}
	if v > h.Upper {
		return h.Upper
	}
	return v
}

func (h Hint) interpolate(t float64) float64 {
	if h.Logarithmic && h.Lower > 0 && h.Upper > 0 {
		return math.Exp(math.Log(h.Lower)*(1-t) + math.Log(h.Upper)*t)
	}
	return h.Lower*(1-t) + h.Upper*t
}

// PortInfo describes one port of a descriptor.
type PortInfo struct {
	ID      PortID
	Name    string
	Kind    PortKind
	Channel int // channel index, 0 = left/mono
	Slot    int // control slot within the channel, ignored for audio ports
	Hint    Hint
}

// StereoPorts derives a two-channel port table from a mono one. Left ports
// keep their ids and gain a " Left" suffix. Right ports are numbered after
// the last mono port in the same order and gain a " Right" suffix.
func StereoPorts(mono []PortInfo) []PortInfo {
	out := make([]PortInfo, 0, 2*len(mono))
	for _, p := range mono {
		p.Name += " Left"
		out = append(out, p)
	}
	offset := PortID(len(mono))
	for _, p := range mono {
		p.ID += offset
		p.Channel = 1
		p.Name += " Right"
		out = append(out, p)
	}
	return out
}
