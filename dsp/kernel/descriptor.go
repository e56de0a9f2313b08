package kernel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDescriptor is wrapped by every descriptor validation failure.
var ErrInvalidDescriptor = errors.New("kernel: invalid descriptor")

// Descriptor is the static description of one kernel type and channel
// layout, as a host boundary would publish it.
type Descriptor struct {
	UniqueID  uint32
	Label     string
	Name      string
	Maker     string
	Copyright string
	// RealTime reports that Process is hard real-time capable.
	RealTime bool
	Channels int
	Ports    []PortInfo
	// New constructs a fresh, inactive kernel.
	New func() Kernel
}

// Port returns the port with the given id.
func (d *Descriptor) Port(id PortID) (PortInfo, bool) {
	for _, p := range d.Ports {
		if p.ID == id {
			return p, true
		}
	}
	return PortInfo{}, false
}

// PortByName finds a port by case-insensitive name.
func (d *Descriptor) PortByName(name string) (PortInfo, bool) {
	for _, p := range d.Ports {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return PortInfo{}, false
}

// Controls returns the control ports in declaration order.
func (d *Descriptor) Controls() []PortInfo {
	var out []PortInfo
	for _, p := range d.Ports {
		if p.Kind == Control {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that the port table is consistent with the channel count:
// ids are unique and non-negative, every channel has exactly one input and
// one output, and control slots are unique per channel.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil", ErrInvalidDescriptor)
	}
	if d.Label == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidDescriptor)
	}
	if d.New == nil {
		return fmt.Errorf("%w: %s: nil constructor", ErrInvalidDescriptor, d.Label)
	}
	if d.Channels < 1 || d.Channels > MaxChannels {
		return fmt.Errorf("%w: %s: channels must be in [1, %d]: %d",
			ErrInvalidDescriptor, d.Label, MaxChannels, d.Channels)
	}

	seen := make(map[PortID]bool, len(d.Ports))
	var ins, outs [MaxChannels]int
	var slots [MaxChannels][MaxControls]bool

	for _, p := range d.Ports {
		if p.ID < 0 || seen[p.ID] {
			return fmt.Errorf("%w: %s: bad or duplicate port id %d", ErrInvalidDescriptor, d.Label, p.ID)
		}
		seen[p.ID] = true

		if p.Channel < 0 || p.Channel >= d.Channels {
			return fmt.Errorf("%w: %s: port %q on channel %d", ErrInvalidDescriptor, d.Label, p.Name, p.Channel)
		}

		switch p.Kind {
		case AudioIn:
			ins[p.Channel]++
		case AudioOut:
			outs[p.Channel]++
		case Control:
			if p.Slot < 0 || p.Slot >= MaxControls || slots[p.Channel][p.Slot] {
				return fmt.Errorf("%w: %s: bad or duplicate control slot %d", ErrInvalidDescriptor, d.Label, p.Slot)
			}
			slots[p.Channel][p.Slot] = true
			if p.Hint.Lower > p.Hint.Upper {
				return fmt.Errorf("%w: %s: port %q bounds inverted", ErrInvalidDescriptor, d.Label, p.Name)
			}
		default:
			return fmt.Errorf("%w: %s: port %q has unknown kind", ErrInvalidDescriptor, d.Label, p.Name)
		}
	}

	for ch := 0; ch < d.Channels; ch++ {
		if ins[ch] != 1 || outs[ch] != 1 {
			return fmt.Errorf("%w: %s: channel %d needs one input and one output", ErrInvalidDescriptor, d.Label, ch)
		}
	}

	return nil
}
