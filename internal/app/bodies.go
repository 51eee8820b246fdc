package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
)

// PrintBodies writes the body table, one row per body.
func PrintBodies(out io.Writer, bodies []config.BodyConfig) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPOSITION\tRADIUS\tSPIN\tSHELL\tSATELLITE")
	for _, b := range bodies {
		shell := "-"
		if b.Shell != nil {
			shell = fmt.Sprintf("r=%g drift=%g", b.Shell.Radius, b.Shell.Drift)
		}
		sat := "-"
		if b.Satellite != nil {
			sat = fmt.Sprintf("d=%g r=%g speed=%g", b.Satellite.Distance, b.Satellite.Radius, b.Satellite.Speed)
		}
		fmt.Fprintf(tw, "%s\t(%g, %g, %g)\t%g\t%g\t%s\t%s\n",
			b.ID, b.Position[0], b.Position[1], b.Position[2], b.Radius, b.IdleSpin, shell, sat)
	}
	return tw.Flush()
}
