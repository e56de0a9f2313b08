package main

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
)

// CPUCmd reports the CPU features algo-vecmath dispatches on.
type CPUCmd struct{}

// Run implements the cpu subcommand.
func (c *CPUCmd) Run(g *Globals) error {
	f := cpu.DetectFeatures()
	printTitle(g.Out, "Block math dispatch")
	printKV(g.Out, "Architecture", f.Architecture)
	printKV(g.Out, "SSE2", f.HasSSE2)
	printKV(g.Out, "AVX2", f.HasAVX2)
	printKV(g.Out, "NEON", f.HasNEON)
	printKV(g.Out, "Forced generic", f.ForceGeneric)
	printKV(g.Out, "Biquad backend", biquad.Backend())
	return nil
}
