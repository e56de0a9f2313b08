package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/measure/response"
)

// ResponseCmd prints a kernel's magnitude response at log-spaced frequencies.
type ResponseCmd struct {
	Label  string             `arg:"" help:"Kernel label, see 'kernelinfo list'"`
	Param  map[string]float64 `short:"p" help:"Control value as NAME=VALUE; repeatable" placeholder:"NAME=VALUE"`
	Rate   float64            `short:"r" default:"48000" help:"Sample rate in Hz"`
	Length int                `short:"n" default:"8192" help:"Impulse response length in samples"`
	Points int                `default:"24" help:"Number of log-spaced frequencies to print"`
	Min    float64            `default:"20" help:"Lowest frequency in Hz"`
}

// Run implements the response subcommand.
func (c *ResponseCmd) Run(g *Globals) error {
	inst, err := newInstance(c.Label, c.Rate, c.Param)
	if err != nil {
		return err
	}
	defer inst.Destroy()
	if err := inst.Activate(); err != nil {
		return err
	}

	ir, err := response.Impulse(inst, c.Length)
	if err != nil {
		return err
	}
	a := response.NewAnalyzer(core.WithSampleRate(c.Rate))
	bins, err := a.Magnitude(ir)
	if err != nil {
		return err
	}

	printTitle(g.Out, inst.Descriptor().Name)
	printKV(g.Out, "Sample rate", c.Rate)
	printKV(g.Out, "FFT size", a.FFTSize(len(ir)))
	printKV(g.Out, "Peak sample", fmt.Sprintf("%.6f", response.Peak(ir)))
	fmt.Fprintln(g.Out)

	model, hasModel := analyticModel(inst)

	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
	if hasModel {
		fmt.Fprintln(tw, "Freq [Hz]\tMagnitude\tLevel [dB]\tModel [dB]\t")
	} else {
		fmt.Fprintln(tw, "Freq [Hz]\tMagnitude\tLevel [dB]\t")
	}
	for _, f := range logSpaced(c.Min, c.Rate/2, c.Points) {
		b := response.NearestBin(bins, f)
		if hasModel {
			fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\t%.2f\t\n", b.Freq, b.Magnitude, b.DB, model.MagnitudeDB(b.Freq, c.Rate))
			continue
		}
		fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\t\n", b.Freq, b.Magnitude, b.DB)
	}
	return tw.Flush()
}

// logSpaced returns n frequencies from lo to hi inclusive on a log scale.
func logSpaced(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi < lo {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}
