// Package catalog indexes kernel descriptors by label and unique ID, the way
// a host enumerates a plugin library.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-kernels/dsp/filter/comb"
	"github.com/cwbudde/algo-kernels/dsp/filter/fir"
	"github.com/cwbudde/algo-kernels/dsp/filter/iir"
	"github.com/cwbudde/algo-kernels/dsp/filter/reson"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

var (
	// ErrDuplicate is returned when a label or unique ID is already taken.
	ErrDuplicate = errors.New("catalog: duplicate descriptor")
	// ErrUnknown is returned by Instantiate for an unregistered label.
	ErrUnknown = errors.New("catalog: unknown label")
)

// Registry maps labels and unique IDs to descriptors.
type Registry struct {
	byLabel map[string]*kernel.Descriptor
	byID    map[uint32]*kernel.Descriptor
	order   []*kernel.Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byLabel: make(map[string]*kernel.Descriptor),
		byID:    make(map[uint32]*kernel.Descriptor),
	}
}

// Register adds a validated descriptor.
func (r *Registry) Register(desc *kernel.Descriptor) error {
	if desc == nil {
		return kernel.ErrNilDescriptor
	}
	if desc.Label == "" {
		return errors.New("catalog: empty label")
	}
	if err := desc.Validate(); err != nil {
		return err
	}
	if _, ok := r.byLabel[desc.Label]; ok {
		return fmt.Errorf("%w: label %s", ErrDuplicate, desc.Label)
	}
	if prev, ok := r.byID[desc.UniqueID]; ok {
		return fmt.Errorf("%w: id %#08x used by %s", ErrDuplicate, desc.UniqueID, prev.Label)
	}

	r.byLabel[desc.Label] = desc
	r.byID[desc.UniqueID] = desc
	r.order = append(r.order, desc)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(desc *kernel.Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor with the given label, or nil.
func (r *Registry) Lookup(label string) *kernel.Descriptor {
	return r.byLabel[label]
}

// LookupID returns the descriptor with the given unique ID, or nil.
func (r *Registry) LookupID(id uint32) *kernel.Descriptor {
	return r.byID[id]
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.order) }

// Labels returns all labels in sorted order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.order))
	for _, d := range r.order {
		labels = append(labels, d.Label)
	}
	slices.Sort(labels)
	return labels
}

// Descriptors returns the descriptors in registration order.
func (r *Registry) Descriptors() []*kernel.Descriptor {
	return slices.Clone(r.order)
}

// Instantiate creates an instance of the labelled descriptor.
func (r *Registry) Instantiate(label string, sampleRate float64) (*kernel.Instance, error) {
	desc := r.Lookup(label)
	if desc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, label)
	}
	return kernel.New(desc, sampleRate)
}

// Default returns a new registry holding the mono and stereo variants of
// every built-in kernel, in the order a host would enumerate them.
func Default() *Registry {
	r := New()
	for _, desc := range []*kernel.Descriptor{
		fir.MonoDescriptor(), fir.StereoDescriptor(),
		iir.MonoDescriptor(), iir.StereoDescriptor(),
		reson.MonoDescriptor(), reson.StereoDescriptor(),
		comb.MonoDescriptor(), comb.StereoDescriptor(),
	} {
		r.MustRegister(desc)
	}
	return r
}
