package cli

import (
	"fmt"

	"github.com/robinvdvleuten/confit/formatter"
	"github.com/robinvdvleuten/confit/loader"
	"github.com/robinvdvleuten/confit/parser"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands. The syntax flags
// select the dialect; the codec flags configure the byte-stream transforms
// applied before parsing and after serialization.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`

	CommentStarter string `help:"Comment starter character." default:";"`
	SectionOpen    string `help:"Section opening wrapper character." default:"["`
	SectionClose   string `help:"Section closing wrapper character." default:"]"`
	Delimiter      string `help:"Key/value delimiter character." default:"="`

	Compressed bool   `help:"Treat files as gzip compressed."`
	Password   string `help:"Password for encrypted files." env:"CONFIT_PASSWORD"`
	Encoding   string `help:"IANA character set of the text (default UTF-8)."`
}

// Validate implements kong.Validatable.
func (g *Globals) Validate() error {
	for name, flag := range map[string]string{
		"comment-starter": g.CommentStarter,
		"section-open":    g.SectionOpen,
		"section-close":   g.SectionClose,
		"delimiter":       g.Delimiter,
	} {
		if len(flag) != 1 {
			return fmt.Errorf("--%s must be a single character, got %q", name, flag)
		}
	}
	return nil
}

// ParserOptions translates the syntax flags into parser options.
func (g *Globals) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithCommentStarter(g.CommentStarter[0]),
		parser.WithSectionWrappers(g.SectionOpen[0], g.SectionClose[0]),
		parser.WithKeyDelimiter(g.Delimiter[0]),
	}
}

// FormatterOptions translates the syntax flags into formatter options.
func (g *Globals) FormatterOptions() []formatter.Option {
	return []formatter.Option{
		formatter.WithCommentStarter(g.CommentStarter[0]),
		formatter.WithSectionWrappers(g.SectionOpen[0], g.SectionClose[0]),
		formatter.WithKeyDelimiter(g.Delimiter[0]),
	}
}

// Loader builds a loader configured from the global flags plus any extra
// options.
func (g *Globals) Loader(extra ...loader.Option) *loader.Loader {
	opts := []loader.Option{
		loader.WithParserOptions(g.ParserOptions()...),
		loader.WithFormatterOptions(g.FormatterOptions()...),
	}
	if g.Compressed {
		opts = append(opts, loader.WithCompression())
	}
	if g.Password != "" {
		opts = append(opts, loader.WithPassword(g.Password))
	}
	if g.Encoding != "" {
		opts = append(opts, loader.WithEncoding(g.Encoding))
	}
	return loader.New(append(opts, extra...)...)
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Parse a configuration file and report its structure."`
	Format FormatCmd `cmd:"" help:"Re-serialize a configuration file, preserving comments and spacing."`
	Get    GetCmd    `cmd:"" help:"Print the value of a single key."`
	Set    SetCmd    `cmd:"" help:"Set the value of a single key, preserving all formatting."`
	Dump   DumpCmd   `cmd:"" help:"Dump the parsed document model."`
	Watch  WatchCmd  `cmd:"" help:"Watch a configuration file and re-check it on change."`
}
