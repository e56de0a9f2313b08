package response

import (
	"errors"

	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

// Errors returned by response measurement.
var (
	ErrEmptyResponse     = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrNilInstance       = errors.New("response: instance is nil")
)

// Impulse feeds a unit impulse followed by n-1 zeros into every input of an
// active instance and returns channel 0 of the output. Control values come
// from the instance's current bindings. Audio bindings are restored before
// Impulse returns.
func Impulse(inst *kernel.Instance, n int) ([]float64, error) {
	chans, err := ImpulseChannels(inst, n)
	if err != nil {
		return nil, err
	}
	return chans[0], nil
}

// ImpulseChannels is like Impulse but returns every output channel.
func ImpulseChannels(inst *kernel.Instance, n int) ([][]float64, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	desc := inst.Descriptor()
	in := make([]float64, n)
	in[0] = 1
	out := make([][]float64, desc.Channels)

	type saved struct {
		id  kernel.PortID
		buf []float64
	}
	var restore []saved
	for _, p := range desc.Ports {
		switch p.Kind {
		case kernel.AudioIn:
			restore = append(restore, saved{p.ID, inst.AudioBinding(p.ID)})
			inst.BindAudio(p.ID, in)
		case kernel.AudioOut:
			restore = append(restore, saved{p.ID, inst.AudioBinding(p.ID)})
			out[p.Channel] = make([]float64, n)
			inst.BindAudio(p.ID, out[p.Channel])
		}
	}
	defer func() {
		for _, s := range restore {
			inst.BindAudio(s.id, s.buf)
		}
	}()

	if err := inst.Process(n); err != nil {
		return nil, err
	}
	return out, nil
}
