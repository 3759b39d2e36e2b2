package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/confit/formatter"
	"github.com/robinvdvleuten/confit/loader"
	"github.com/robinvdvleuten/confit/output"
	"github.com/robinvdvleuten/confit/telemetry"
)

type FormatCmd struct {
	File          FileOrStdin `help:"Configuration input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Write         bool        `help:"Rewrite the input file instead of printing to stdout." short:"w"`
	AlignComments bool        `help:"Align inline comments to a common column."`
	Column        int         `help:"Column for inline comment alignment (auto-calculated from content if 0)." default:"0"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	var fmtOpts []formatter.Option
	if cmd.Column > 0 {
		fmtOpts = append(fmtOpts, formatter.WithCommentColumn(cmd.Column))
	} else if cmd.AlignComments {
		fmtOpts = append(fmtOpts, formatter.WithAlignComments())
	}

	ldr := globals.Loader(loader.WithFormatterOptions(fmtOpts...))

	doc, err := cmd.File.LoadDocument(runCtx, ldr)
	if err != nil {
		renderer := NewErrorRenderer(cmd.File.Contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "format failed")
		return NewCommandError(1)
	}

	if cmd.Write && !cmd.File.IsStdin() {
		ok, err := promptYesNo(fmt.Sprintf("Rewrite %s in place?", cmd.File.Filename))
		if err != nil {
			return err
		}
		if !ok && isTerminal() {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}

		if err := ldr.Save(runCtx, cmd.File.GetAbsoluteFilename(), doc); err != nil {
			return err
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", pathStyle.Render(cmd.File.Filename)))
		return nil
	}

	data, err := ldr.Encode(runCtx, doc)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
