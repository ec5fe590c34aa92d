// Command pitchtransposer shifts the pitch of a .wav file, or of audio
// captured live from the default input device, using either a fixed
// semitone shift or a phase-vocoder autotune.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/pitchtranspose/internal/applog"
	"github.com/cwbudde/pitchtranspose/orchestrator"
)

var cli struct {
	Static   staticCmd   `cmd:"" help:"Transform a .wav file and write the result to disk."`
	RealTime realTimeCmd `cmd:"" name:"real-time" help:"Capture audio, transpose it, and play it back, until interrupted."`
}

type staticCmd struct {
	Basic        basicStaticCmd        `cmd:"" help:"Shift by a fixed number of semitones."`
	PhaseVocoder phaseVocoderStaticCmd `cmd:"" name:"phase-vocoder" help:"Autotune to the nearest twelve-tone note with a phase vocoder."`
}

type basicStaticCmd struct {
	InPath      string `short:"i" name:"in-path" required:"" help:"Path to the input .wav file."`
	OutFilename string `short:"o" name:"out-filename" required:"" help:"Output filename, written under resources/outputs/."`
	Shift       int    `arg:"" name:"shift" help:"Semitones to shift; negative lowers pitch, 0 is a no-op."`
}

func (c *basicStaticCmd) Run() error {
	if err := orchestrator.BasicStatic(c.InPath, c.OutFilename, c.Shift); err != nil {
		return err
	}

	applog.Infof("Successfully transposed signal!")

	return nil
}

type phaseVocoderStaticCmd struct {
	InPath      string `short:"i" name:"in-path" required:"" help:"Path to the input .wav file."`
	OutFilename string `short:"o" name:"out-filename" required:"" help:"Output filename, written under resources/outputs/."`
	Fsize       int    `short:"f" name:"fsize" required:"" help:"Frame size used for analysis and synthesis."`
	Hopa        int    `name:"hopa" required:"" help:"Hop size between analysis frames."`
}

func (c *phaseVocoderStaticCmd) Run() error {
	if err := orchestrator.PhaseVocoderStatic(c.InPath, c.OutFilename, c.Fsize, c.Hopa); err != nil {
		return err
	}

	applog.Infof("Successfully transposed signal!")

	return nil
}

type realTimeCmd struct {
	Basic        basicRealTimeCmd        `cmd:"" help:"Shift by a fixed number of semitones."`
	PhaseVocoder phaseVocoderRealTimeCmd `cmd:"" name:"phase-vocoder" help:"Autotune to the nearest note, or shift by a fixed scale."`
}

type basicRealTimeCmd struct {
	Shift int `arg:"" name:"shift" help:"Semitones to shift; negative lowers pitch, 0 is a no-op."`
}

func (c *basicRealTimeCmd) Run() error {
	return runRealTime(orchestrator.BasicRealTime(c.Shift))
}

type phaseVocoderRealTimeCmd struct {
	Fsize int      `short:"f" name:"fsize" required:"" help:"Frame size used for analysis and synthesis."`
	Hopa  int      `name:"hopa" required:"" help:"Hop size between analysis frames."`
	Shift *float64 `short:"s" name:"shift" help:"Fixed scale factor; if omitted, autotunes to the nearest note."`
}

func (c *phaseVocoderRealTimeCmd) Run() error {
	return runRealTime(orchestrator.PhaseVocoderRealTime(c.Fsize, c.Hopa, c.Shift))
}

func runRealTime(transpose orchestrator.Transposer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return orchestrator.RunRealTime(ctx, transpose)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pitchtransposer"),
		kong.Description("Shift the pitch of a .wav file or of live captured audio."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Printf("main() failed: %v\n", err)
		os.Exit(1)
	}
}
