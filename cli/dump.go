package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

type DumpCmd struct {
	File FileOrStdin `help:"Configuration input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	doc, err := cmd.File.LoadDocument(context.Background(), globals.Loader())
	if err != nil {
		renderer := NewErrorRenderer(cmd.File.Contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	repr.Println(doc)

	return nil
}
