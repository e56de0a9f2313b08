package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernels/dsp/catalog"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

// ListCmd prints every registered descriptor.
type ListCmd struct {
	Ports bool `short:"P" help:"Also list ports with their bounds"`
}

// Run implements the list subcommand.
func (c *ListCmd) Run(g *Globals) error {
	reg := catalog.Default()

	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("Label")+"\t"+headerStyle.Render("ID")+"\t"+
		headerStyle.Render("Ch")+"\t"+headerStyle.Render("Name"))
	for _, label := range reg.Labels() {
		d := reg.Lookup(label)
		fmt.Fprintf(tw, "%s\t%#08x\t%d\t%s\n", d.Label, d.UniqueID, d.Channels, d.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !c.Ports {
		return nil
	}
	for _, label := range reg.Labels() {
		d := reg.Lookup(label)
		fmt.Fprintln(g.Out)
		printTitle(g.Out, d.Label)
		tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
		for _, p := range d.Ports {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", p.ID, p.Name, p.Kind, describeHint(p))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func describeHint(p kernel.PortInfo) string {
	if p.Kind != kernel.Control {
		return ""
	}
	s := fmt.Sprintf("[%g, %g] default %g", p.Hint.Lower, p.Hint.Upper, p.Hint.DefaultValue())
	if p.Hint.Logarithmic {
		s += " log"
	}
	if p.Hint.Integer {
		s += " int"
	}
	return s
}
