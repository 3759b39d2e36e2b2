package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/confit/ast"
)

type GetCmd struct {
	File    FileOrStdin `help:"Configuration input filename (use '-' for stdin)." arg:""`
	Section string      `help:"Section name (use '@global' for keys before any section)." arg:""`
	Key     string      `help:"Key name." arg:""`
}

func (cmd *GetCmd) Run(ctx *kong.Context, globals *Globals) error {
	doc, err := cmd.File.LoadDocument(context.Background(), globals.Loader())
	if err != nil {
		renderer := NewErrorRenderer(cmd.File.Contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	section := doc.Section(cmd.Section)
	if section == nil {
		printError(ctx.Stderr, fmt.Sprintf("no section %q", cmd.Section))
		return NewCommandError(1)
	}

	key := section.Key(cmd.Key)
	if key == nil {
		printError(ctx.Stderr, fmt.Sprintf("no key %q in section %q", cmd.Key, cmd.Section))
		return NewCommandError(1)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, key.Value)
	return nil
}

type SetCmd struct {
	File    FileOrStdin `help:"Configuration filename to edit." arg:""`
	Section string      `help:"Section name (created if missing, '@global' for the global section)." arg:""`
	Key     string      `help:"Key name (created if missing)." arg:""`
	Value   string      `help:"New value." arg:""`
}

func (cmd *SetCmd) Run(ctx *kong.Context, globals *Globals) error {
	if cmd.File.IsStdin() {
		return fmt.Errorf("set requires a file, not stdin")
	}

	runCtx := context.Background()
	ldr := globals.Loader()

	doc, err := cmd.File.LoadDocument(runCtx, ldr)
	if err != nil {
		renderer := NewErrorRenderer(cmd.File.Contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	section := doc.Section(cmd.Section)
	if section == nil {
		if cmd.Section == ast.GlobalSection {
			section = doc.EnsureGlobal()
		} else {
			section = doc.AddSection(cmd.Section, ast.WithBlanksBefore(1))
		}
	}

	if key := section.Key(cmd.Key); key != nil {
		key.SetValue(cmd.Value)
	} else {
		section.AddKey(cmd.Key, cmd.Value)
	}

	if err := ldr.Save(runCtx, cmd.File.GetAbsoluteFilename(), doc); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("set %s.%s in %s",
		cmd.Section, cmd.Key, pathStyle.Render(cmd.File.Filename)))
	return nil
}
