// Command kernelinfo inspects the built-in filter kernels.
//
// Usage:
//
//	kernelinfo list
//	kernelinfo response <label> [-p NAME=VALUE ...] [--points N]
//	kernelinfo render <label> <in.wav> <out.wav> [-p NAME=VALUE ...]
//	kernelinfo cpu
//
// Examples:
//
//	kernelinfo list
//	kernelinfo response iir_mono -p Coefficient=0.9
//	kernelinfo response reson_mono -p Frequency=1000 -p Bandwidth=50 --points 32
//	kernelinfo render comb_stereo in.wav out.wav -p Delay=20 -p Sharpness=0.95
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// Globals is shared by every subcommand.
type Globals struct {
	Out io.Writer
}

// CLI defines the command-line interface.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`

	List     ListCmd     `cmd:"" help:"List kernel descriptors and their ports"`
	Response ResponseCmd `cmd:"" help:"Print the magnitude response of a kernel"`
	Render   RenderCmd   `cmd:"" help:"Process a PCM WAV file through a kernel"`
	CPU      CPUCmd      `cmd:"" name:"cpu" help:"Show the SIMD features used for block math"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kernelinfo"),
		kong.Description("Inspect and run the comb, FIR, IIR and reson filter kernels"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&Globals{Out: os.Stdout}); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
