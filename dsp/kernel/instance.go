package kernel

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Instance methods.
var (
	ErrNilDescriptor     = errors.New("kernel: descriptor is nil")
	ErrInvalidSampleRate = errors.New("kernel: sample rate must be positive and finite")
	ErrNotActive         = errors.New("kernel: instance is not active")
	ErrDestroyed         = errors.New("kernel: instance is destroyed")
	ErrUnboundPort       = errors.New("kernel: required port is not bound")
	ErrShortBuffer       = errors.New("kernel: audio buffer shorter than frame count")
	ErrNegativeFrames    = errors.New("kernel: frame count is negative")
)

// State is the lifecycle state of an Instance.
type State uint8

const (
	// StateCreated holds a sample rate and port bindings only.
	StateCreated State = iota
	// StateActive has buffers allocated and accepts Process calls.
	StateActive
	// StateInactive has released its buffers and may be activated again.
	StateInactive
	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

type binding struct {
	kind    PortKind
	valid   bool
	control *float64
	audio   []float64
}

type route struct {
	in, out  PortID
	controls [MaxControls]PortID
	used     [MaxControls]bool
}

// Instance runs one kernel through the create/bind/activate/process/
// deactivate/destroy lifecycle. An Instance is not safe for concurrent use;
// distinct instances share no state.
type Instance struct {
	desc       *Descriptor
	sampleRate float64
	kernel     Kernel
	state      State

	bindings []binding
	routes   [MaxChannels]route
	block    Block
}

// New creates an instance of desc running at sampleRate.
func New(desc *Descriptor, sampleRate float64) (*Instance, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	maxID := PortID(0)
	for _, p := range desc.Ports {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	inst := &Instance{
		desc:       desc,
		sampleRate: sampleRate,
		bindings:   make([]binding, maxID+1),
	}
	inst.block.Channels = desc.Channels

	for _, p := range desc.Ports {
		inst.bindings[p.ID] = binding{kind: p.Kind, valid: true}
		r := &inst.routes[p.Channel]
		switch p.Kind {
		case AudioIn:
			r.in = p.ID
		case AudioOut:
			r.out = p.ID
		case Control:
			r.controls[p.Slot] = p.ID
			r.used[p.Slot] = true
		}
	}

	return inst, nil
}

// Descriptor returns the descriptor the instance was created from.
func (i *Instance) Descriptor() *Descriptor { return i.desc }

// SampleRate returns the sample rate fixed at creation.
func (i *Instance) SampleRate() float64 { return i.sampleRate }

// State returns the current lifecycle state.
func (i *Instance) State() State { return i.state }

// BindControl associates a control port with a value location the caller
// keeps valid for every later Process call. Unknown ids, non-control ids and
// destroyed instances are ignored. Passing nil unbinds the port.
func (i *Instance) BindControl(id PortID, v *float64) {
	b := i.lookup(id, Control)
	if b == nil {
		return
	}
	b.control = v
}

// BindAudio associates an audio port with a sample buffer. Unknown ids,
// control ids and destroyed instances are ignored. Passing nil unbinds.
func (i *Instance) BindAudio(id PortID, buf []float64) {
	if i.state == StateDestroyed || id < 0 || int(id) >= len(i.bindings) {
		return
	}
	b := &i.bindings[id]
	if !b.valid || b.kind == Control {
		return
	}
	b.audio = buf
}

// AudioBinding returns the buffer currently bound to an audio port, or nil.
func (i *Instance) AudioBinding(id PortID) []float64 {
	if id < 0 || int(id) >= len(i.bindings) || i.bindings[id].kind == Control {
		return nil
	}
	return i.bindings[id].audio
}

// ControlBinding returns the value location bound to a control port, or nil.
func (i *Instance) ControlBinding(id PortID) *float64 {
	if id < 0 || int(id) >= len(i.bindings) || !i.bindings[id].valid || i.bindings[id].kind != Control {
		return nil
	}
	return i.bindings[id].control
}

func (i *Instance) lookup(id PortID, kind PortKind) *binding {
	if i.state == StateDestroyed || id < 0 || int(id) >= len(i.bindings) {
		return nil
	}
	b := &i.bindings[id]
	if !b.valid || b.kind != kind {
		return nil
	}
	return b
}

// Activate allocates and zeroes the kernel state. Activating an active
// instance resets it to the same state as the first activation.
func (i *Instance) Activate() error {
	if i.state == StateDestroyed {
		return ErrDestroyed
	}
	if i.kernel == nil {
		i.kernel = i.desc.New()
	}
	if err := i.kernel.Activate(i.sampleRate, i.desc.Channels); err != nil {
		i.kernel.Deactivate()
		i.state = StateInactive
		return fmt.Errorf("kernel: activate %s: %w", i.desc.Label, err)
	}
	i.state = StateActive
	return nil
}

// Process renders frames frames from the bound inputs to the bound outputs.
// A zero frame count is a no-op. On error, kernel state is untouched.
func (i *Instance) Process(frames int) error {
	switch i.state {
	case StateActive:
	case StateDestroyed:
		return ErrDestroyed
	default:
		return ErrNotActive
	}
	if frames < 0 {
		return ErrNegativeFrames
	}
	if frames == 0 {
		return nil
	}

	b := &i.block
	b.Frames = frames
	for ch := 0; ch < i.desc.Channels; ch++ {
		if err := i.load(ch, frames); err != nil {
			i.release()
			return err
		}
	}

	i.kernel.Process(b)
	i.release()
	return nil
}

func (i *Instance) load(ch, frames int) error {
	r := &i.routes[ch]
	in := i.bindings[r.in].audio
	out := i.bindings[r.out].audio
	if in == nil || out == nil {
		return ErrUnboundPort
	}
	if len(in) < frames || len(out) < frames {
		return ErrShortBuffer
	}

	c := &i.block.Ch[ch]
	c.In = in[:frames]
	c.Out = out[:frames]
	for s := range r.controls {
		if !r.used[s] {
			c.Controls[s] = 0
			continue
		}
		v := i.bindings[r.controls[s]].control
		if v == nil {
			return ErrUnboundPort
		}
		c.Controls[s] = *v
	}
	return nil
}

func (i *Instance) release() {
	for ch := range i.block.Ch {
		i.block.Ch[ch].In = nil
		i.block.Ch[ch].Out = nil
	}
}

// Deactivate releases the kernel buffers. It is a no-op unless the instance
// is active.
func (i *Instance) Deactivate() {
	if i.state != StateActive {
		return
	}
	i.kernel.Deactivate()
	i.state = StateInactive
}

// Destroy deactivates the instance if needed and drops all bindings.
// Every later call is rejected.
func (i *Instance) Destroy() {
	if i.state == StateDestroyed {
		return
	}
	i.Deactivate()
	i.kernel = nil
	for id := range i.bindings {
		i.bindings[id].control = nil
		i.bindings[id].audio = nil
	}
	i.state = StateDestroyed
}
