// Package formatter re-emits a parsed configuration document as text.
//
// The default mode reproduces the source byte-for-byte for round-trippable
// inputs: blank-line runs, indentation, comment text and the exact spacing
// between values and their inline comments all come from the trivia the
// parser recorded. Documented normalizations: key lines are emitted as
// "name<sp>delim<sp>value", indentation is emitted as spaces, and the output
// always ends with a newline.
//
// An optional alignment mode pads inline comments to a common column instead
// of preserving the recorded spacing.
package formatter

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/confit/ast"
)

// MinimumSpacing is the minimum number of spaces between a value and an
// aligned inline comment.
const MinimumSpacing = 2

// Formatter handles serialization of configuration documents.
type Formatter struct {
	// CommentStarter, SectionOpen, SectionClose and KeyDelimiter are the
	// syntax characters to emit. They must match the characters the document
	// was parsed with for exact round-tripping.
	CommentStarter byte
	SectionOpen    byte
	SectionClose   byte
	KeyDelimiter   byte

	// AlignComments pads inline key comments to a common column instead of
	// reproducing the recorded spacing. Default: false (exact preservation).
	AlignComments bool

	// CommentColumn is the target column for aligned inline comments.
	// If 0, a good value is selected automatically from the contents.
	CommentColumn int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithCommentStarter sets the character emitted before comment text.
func WithCommentStarter(c byte) Option {
	return func(f *Formatter) { f.CommentStarter = c }
}

// WithSectionWrappers sets the characters wrapping section names.
func WithSectionWrappers(open, close byte) Option {
	return func(f *Formatter) {
		f.SectionOpen = open
		f.SectionClose = close
	}
}

// WithKeyDelimiter sets the character emitted between key names and values.
func WithKeyDelimiter(c byte) Option {
	return func(f *Formatter) { f.KeyDelimiter = c }
}

// WithAlignComments enables inline comment alignment.
func WithAlignComments() Option {
	return func(f *Formatter) { f.AlignComments = true }
}

// WithCommentColumn sets a specific column for inline comment alignment and
// implies WithAlignComments.
func WithCommentColumn(col int) Option {
	return func(f *Formatter) {
		f.AlignComments = true
		f.CommentColumn = col
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		CommentStarter: ';',
		SectionOpen:    '[',
		SectionClose:   ']',
		KeyDelimiter:   '=',
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format serializes the document to the writer.
func (f *Formatter) Format(doc *ast.Document, w io.Writer) error {
	var buf strings.Builder
	buf.Grow(estimateSize(doc))

	col := 0
	if f.AlignComments {
		col = f.commentColumn(doc)
	}

	for _, section := range doc.Sections {
		f.writeSection(&buf, section, col)
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// FormatString serializes the document and returns it as a string.
func (f *Formatter) FormatString(doc *ast.Document) (string, error) {
	var buf strings.Builder
	if err := f.Format(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// estimateSize guesses the output size to pre-grow the builder: empirically
// ~24 bytes per key plus header overhead per section.
func estimateSize(doc *ast.Document) int {
	return doc.Len()*24 + len(doc.Sections)*16
}

func (f *Formatter) writeSection(buf *strings.Builder, section *ast.Section, col int) {
	f.writeTrailing(buf, section.Trailing)
	writeBlanks(buf, section.BlanksBefore)

	// The global section is implicit: its keys serialize without a header.
	if !section.IsGlobal() {
		writeIndent(buf, section.Indent)
		buf.WriteByte(f.SectionOpen)
		buf.WriteString(section.Name)
		buf.WriteByte(f.SectionClose)
		f.writeInline(buf, section.Leading, false)
		buf.WriteByte('\n')
	}

	for _, key := range section.Keys {
		f.writeKey(buf, key, col)
	}
}

func (f *Formatter) writeKey(buf *strings.Builder, key *ast.Key, col int) {
	f.writeTrailing(buf, key.Trailing)
	writeBlanks(buf, key.BlanksBefore)

	writeIndent(buf, key.Indent)
	if key.Name != "" {
		buf.WriteString(key.Name)
		buf.WriteByte(' ')
	}
	buf.WriteByte(f.KeyDelimiter)
	if key.Value != "" {
		buf.WriteByte(' ')
		buf.WriteString(key.Value)
	}

	if key.Leading != nil && f.AlignComments && key.Value != "" {
		width := key.Indent + runewidth.StringWidth(key.Name) + 3 + runewidth.StringWidth(key.Value)
		pad := col - width
		if pad < MinimumSpacing {
			pad = MinimumSpacing
		}
		writeSpaces(buf, pad)
		buf.WriteByte(f.CommentStarter)
		buf.WriteString(key.Leading.Text)
	} else {
		f.writeInline(buf, key.Leading, key.Value == "")
	}
	buf.WriteByte('\n')
}

// writeInline emits an inline leading comment using its recorded spacing.
// An empty value consumed the separator space during parsing, so one space is
// restored before the starter in that case.
func (f *Formatter) writeInline(buf *strings.Builder, comment *ast.Comment, emptyValue bool) {
	if comment == nil {
		return
	}
	if emptyValue && comment.Indent == 0 {
		buf.WriteByte(' ')
	} else {
		writeSpaces(buf, comment.Indent)
	}
	buf.WriteByte(f.CommentStarter)
	buf.WriteString(comment.Text)
}

// writeTrailing emits a trailing comment block on its own lines. Multi-line
// comments are split back into their accumulated lines, all emitted at the
// block's indentation.
func (f *Formatter) writeTrailing(buf *strings.Builder, comment *ast.Comment) {
	if comment == nil {
		return
	}
	writeBlanks(buf, comment.BlanksBefore)
	for _, line := range comment.Lines() {
		writeIndent(buf, comment.Indent)
		buf.WriteByte(f.CommentStarter)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// commentColumn calculates the alignment column: the widest
// "name<sp>delim<sp>value" prefix among keys carrying inline comments, plus
// the minimum spacing. Width is measured as display width so wide runes
// align correctly.
func (f *Formatter) commentColumn(doc *ast.Document) int {
	if f.CommentColumn > 0 {
		return f.CommentColumn
	}

	max := 0
	for _, section := range doc.Sections {
		for _, key := range section.Keys {
			if key.Leading == nil || key.Value == "" {
				continue
			}
			w := key.Indent + runewidth.StringWidth(key.Name) + 3 + runewidth.StringWidth(key.Value)
			if w > max {
				max = w
			}
		}
	}
	return max + MinimumSpacing
}

func writeBlanks(buf *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte('\n')
	}
}

// writeIndent emits indentation as spaces; tab-vs-space distinctions are
// normalized to character counts.
func writeIndent(buf *strings.Builder, n int) {
	writeSpaces(buf, n)
}

func writeSpaces(buf *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte(' ')
	}
}
