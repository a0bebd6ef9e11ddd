package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ChristopherRabotin/ascent"
)

var tableHeader = []string{"Time (s)", "Speed (m/s)", "Pressure (Pa)", "Temperature (°C)", "Height (m)"}

// writeTable renders the flight log with two decimals per value.
func writeTable(w io.Writer, fl ascent.FlightLog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, col := range tableHeader {
		fmt.Fprintf(tw, "%s\t", col)
	}
	fmt.Fprintln(tw)
	for _, r := range fl {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n", r.Time, r.Speed, r.Pressure, r.Temperature, r.Altitude)
	}
	return tw.Flush()
}
