package main

import (
	"strings"

	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
	"github.com/cwbudde/algo-kernels/dsp/filter/iir"
	"github.com/cwbudde/algo-kernels/dsp/filter/reson"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

// analyticModel returns the second-order section equivalent to the first
// channel of inst, for kernel families with a closed-form transfer function.
func analyticModel(inst *kernel.Instance) (biquad.Coefficients, bool) {
	control := func(id kernel.PortID) float64 {
		if v := inst.ControlBinding(id); v != nil {
			return *v
		}
		return 0
	}

	family, _, _ := strings.Cut(inst.Descriptor().Label, "_")
	switch family {
	case "iir":
		f := iir.New()
		f.SetCoefficient(control(iir.PortCoef))
		return f.Biquad(), true
	case "reson":
		c := reson.Coefficients(control(reson.PortFreq), control(reson.PortBandwidth), inst.SampleRate())
		return c.Biquad(), true
	default:
		return biquad.Coefficients{}, false
	}
}
