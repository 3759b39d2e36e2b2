package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/confit/loader"
	"github.com/robinvdvleuten/confit/parser"
)

type WatchCmd struct {
	File string `help:"Configuration filename to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file itself: editors commonly
	// replace files on save, which drops a watch registered on the old inode.
	dir := filepath.Dir(cmd.File)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(cmd.File)
	if err != nil {
		return err
	}

	printInfof(ctx.Stdout, "watching %s", pathStyle.Render(cmd.File))
	cmd.checkOnce(ctx, globals)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			cmd.checkOnce(ctx, globals)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

func (cmd *WatchCmd) checkOnce(ctx *kong.Context, globals *Globals) {
	var stats parser.Stats
	ldr := globals.Loader(loader.WithParserOptions(parser.WithStats(&stats)))

	doc, err := ldr.Load(context.Background(), cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	message := fmt.Sprintf("%d section(s), %d key(s)", len(doc.Sections), doc.Len())
	if stats.DroppedLines > 0 {
		message += fmt.Sprintf(", %d malformed line(s) ignored", stats.DroppedLines)
	}
	printSuccess(ctx.Stdout, message)
}
