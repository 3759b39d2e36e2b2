package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/confit/loader"
	"github.com/robinvdvleuten/confit/output"
	"github.com/robinvdvleuten/confit/parser"
	"github.com/robinvdvleuten/confit/telemetry"
)

type CheckCmd struct {
	File FileOrStdin `help:"Configuration input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
		runCtx = telemetry.WithRootTimer(runCtx, checkTimer)

		defer reportTelemetry()
	}

	var stats parser.Stats
	ldr := globals.Loader(loader.WithParserOptions(parser.WithStats(&stats)))

	doc, err := cmd.File.LoadDocument(runCtx, ldr)
	if err != nil {
		renderer := NewErrorRenderer(cmd.File.Contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "check failed")

		reportTelemetry()
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d section(s), %d key(s)",
		len(doc.Sections), doc.Len()))

	if stats.DroppedLines > 0 {
		printInfof(ctx.Stdout, "%d malformed line(s) ignored", stats.DroppedLines)
	}

	return nil
}
