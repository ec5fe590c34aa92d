// Command qualitychecker compares a transposed .wav signal against an
// oracle recording and reports whether their spectral distance falls
// within a threshold.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/pitchtranspose/quality"
)

var cli struct {
	PathSignal string  `name:"ps" required:"" help:"Path to the .wav signal to check."`
	PathOracle string  `name:"po" required:"" help:"Path to the .wav oracle signal."`
	Threshold  float64 `name:"th" required:"" help:"Euclidean distance threshold."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("qualitychecker"),
		kong.Description("Compare a transposed signal against an oracle recording."),
		kong.UsageOnError(),
	)

	if cli.Threshold < 0 {
		fmt.Fprintln(os.Stderr, "qualitychecker: threshold must not be negative")
		os.Exit(1)
	}

	good, distance, err := quality.Check(cli.PathSignal, cli.PathOracle, cli.Threshold)
	if err != nil {
		fmt.Printf("main() failed: %v\n", err)
		os.Exit(1)
	}

	if good {
		fmt.Printf("Good quality: %v\n", distance)
	} else {
		fmt.Printf("Bad quality: %v\n", distance)
	}
}
