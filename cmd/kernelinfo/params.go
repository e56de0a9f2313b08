package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-kernels/dsp/catalog"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

var errUnknownParam = errors.New("unknown parameter")

// newInstance creates an instance of label and binds every control port to
// its default value, overridden by params. A param name matches a port name
// case-insensitively. On stereo kernels a name without a " Left" or " Right"
// suffix sets both channels.
func newInstance(label string, sampleRate float64, params map[string]float64) (*kernel.Instance, error) {
	inst, err := catalog.Default().Instantiate(label, sampleRate)
	if err != nil {
		return nil, err
	}
	desc := inst.Descriptor()

	values := make(map[kernel.PortID]*float64)
	for _, p := range desc.Controls() {
		v := p.Hint.DefaultValue()
		values[p.ID] = &v
		inst.BindControl(p.ID, &v)
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ids := matchControl(desc, name)
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w %q for %s", errUnknownParam, name, label)
		}
		for _, id := range ids {
			*values[id] = params[name]
		}
	}
	return inst, nil
}

func matchControl(desc *kernel.Descriptor, name string) []kernel.PortID {
	if p, ok := desc.PortByName(name); ok && p.Kind == kernel.Control {
		return []kernel.PortID{p.ID}
	}
	var ids []kernel.PortID
	for _, suffix := range []string{" Left", " Right"} {
		if p, ok := desc.PortByName(name + suffix); ok && p.Kind == kernel.Control {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
