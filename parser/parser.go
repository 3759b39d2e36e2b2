// Package parser implements a format-preserving parser for sectioned
// key/value configuration text.
//
// The parser performs a single forward pass over the decoded source: every
// line is classified by its first non-whitespace character as a comment, a
// section header, or a key line, and comments, indentation, and blank-line
// runs are attached to the structural elements they belong to. The resulting
// ast.Document carries enough formatting trivia for the formatter package to
// reproduce the original text.
//
// Parsing is lenient: structurally malformed lines (a section header without
// a resolvable closing wrapper, a key line without a delimiter) are dropped
// silently rather than reported as errors. Only failures outside the scan,
// such as reading the input, surface to the caller.
package parser

import (
	"bytes"
	"context"
	"io"

	"github.com/robinvdvleuten/confit/ast"
)

// Default syntax characters, matching the most common dialect.
const (
	DefaultCommentStarter = byte(';')
	DefaultSectionOpen    = byte('[')
	DefaultSectionClose   = byte(']')
	DefaultKeyDelimiter   = byte('=')
)

// Stats reports scan counters for one Parse call. Dropped lines are the
// structurally malformed lines ignored by the leniency policy; exposing the
// count is additive and does not change parse behavior.
type Stats struct {
	Lines        int // Total lines scanned
	DroppedLines int // Malformed lines silently dropped
}

// Parser converts configuration text into an ast.Document. A Parser is
// reusable across inputs; the per-parse state lives in a separate value so
// each Parse call starts from a clean slate.
//
// Configure the syntax characters using functional options passed to New:
//
//	p := parser.New(parser.WithCommentStarter('#'))
type Parser struct {
	comment      byte
	sectionOpen  byte
	sectionClose byte
	delimiter    byte
	stats        *Stats
	interner     *Interner
}

// Option configures a Parser.
type Option func(*Parser)

// WithCommentStarter sets the character that starts a comment.
func WithCommentStarter(c byte) Option {
	return func(p *Parser) { p.comment = c }
}

// WithSectionWrappers sets the characters that open and close a section
// header.
func WithSectionWrappers(open, close byte) Option {
	return func(p *Parser) {
		p.sectionOpen = open
		p.sectionClose = close
	}
}

// WithKeyDelimiter sets the character separating a key name from its value.
func WithKeyDelimiter(c byte) Option {
	return func(p *Parser) { p.delimiter = c }
}

// WithStats makes the parser record scan counters into s on every Parse call,
// overwriting previous contents.
func WithStats(s *Stats) Option {
	return func(p *Parser) { p.stats = s }
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		comment:      DefaultCommentStarter,
		sectionOpen:  DefaultSectionOpen,
		sectionClose: DefaultSectionClose,
		delimiter:    DefaultKeyDelimiter,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.interner = NewInterner(initialInternCapacity)
	return p
}

// initialInternCapacity covers the key/section name vocabulary of a typical
// configuration file.
const initialInternCapacity = 256

// state holds the cross-line parser state threaded through the pass: the
// section receiving key lines, the pending trailing comment, and the
// blank-line counter. Keeping it explicit (rather than on the Parser) makes
// each per-line step testable given a state snapshot.
type state struct {
	doc      *ast.Document
	current  *ast.Section
	pending  *ast.Comment // trailing comment accumulated but not yet attached
	blanks   int          // blank lines since the last non-blank line
	dropped  int
	filename string
	line     int // current source line (1-indexed)
}

// Parse reads all input and parses it. The context is accepted for API
// symmetry with the loader; the scan itself runs to completion without
// suspension points.
func Parse(ctx context.Context, r io.Reader) (*ast.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(ctx, data)
}

// ParseString parses a document from a string using default options.
func ParseString(ctx context.Context, str string) (*ast.Document, error) {
	return ParseBytes(ctx, []byte(str))
}

// ParseBytes parses a document from bytes using default options.
func ParseBytes(ctx context.Context, data []byte) (*ast.Document, error) {
	return New().Parse(ctx, "", data)
}

// ParseBytesWithFilename parses a document from bytes, recording the filename
// in element positions.
func ParseBytesWithFilename(ctx context.Context, filename string, data []byte) (*ast.Document, error) {
	return New().Parse(ctx, filename, data)
}

// Parse scans data in a single forward pass and returns the populated
// document. Malformed content lines never cause an error.
func (p *Parser) Parse(_ context.Context, filename string, data []byte) (*ast.Document, error) {
	st := &state{
		doc:      &ast.Document{},
		filename: filename,
	}

	sc := newLineScanner(data)
	for line, ok := sc.next(); ok; line, ok = sc.next() {
		st.line = sc.line

		kind, indent := p.classify(line)
		if kind == lineBlank {
			st.blanks++
			continue
		}

		switch kind {
		case lineComment:
			p.accumulateComment(st, line, indent)
		case lineSection:
			p.parseSection(st, line, indent)
		case lineKey:
			p.parseKey(st, line, indent)
		}

		// The counter resets after every non-blank line, regardless of
		// whether the line produced an element.
		st.blanks = 0
	}

	if p.stats != nil {
		*p.stats = Stats{Lines: sc.line, DroppedLines: st.dropped}
	}

	return st.doc, nil
}

// accumulateComment handles a comment-only line. The first such line creates
// the pending trailing comment; subsequent ones append to it, joined by "\n",
// until a section or key consumes it.
func (p *Parser) accumulateComment(st *state, line []byte, indent int) {
	text := string(line[indent+1:])

	if st.pending == nil {
		st.pending = &ast.Comment{
			Pos:          p.pos(st, indent),
			Text:         text,
			Kind:         ast.Trailing,
			Indent:       indent,
			BlanksBefore: st.blanks,
		}
		return
	}

	st.pending.Text += "\n" + text
}

// parseSection handles a line whose first non-whitespace character is the
// section-open wrapper.
//
// The section name may legally contain comment-starter or close-wrapper
// characters, so the true terminator is resolved by a bounded backward
// search: scan forward for a comment starter, then search backward for the
// close wrapper in the window before it (or before end of line when no
// starter exists). When the window contains no close wrapper, the scan
// retries from just past that comment starter, which handles a literal close
// wrapper appearing before a later true comment. A header whose terminator
// cannot be resolved is dropped, along with any pending trailing comment.
func (p *Parser) parseSection(st *state, line []byte, indent int) {
	nameStart := indent + 1

	closeAt := -1
	searchFrom := nameStart
	for {
		window := len(line)
		ci := bytes.IndexByte(line[searchFrom:], p.comment)
		if ci >= 0 {
			window = searchFrom + ci
		}

		if j := bytes.LastIndexByte(line[nameStart:window], p.sectionClose); j >= 0 {
			closeAt = nameStart + j
			break
		}

		if ci < 0 {
			break
		}
		searchFrom += ci + 1
	}

	if closeAt < 0 {
		st.pending = nil
		st.dropped++
		return
	}

	section := &ast.Section{
		Pos:          p.pos(st, indent),
		Name:         p.interner.InternBytes(line[nameStart:closeAt]),
		Trailing:     st.pending,
		Indent:       indent,
		BlanksBefore: st.blanks,
	}
	st.pending = nil

	// Text after the closer becomes the section's inline leading comment,
	// but only when it starts with the comment starter.
	rest, ws := trimLeftSpace(line[closeAt+1:])
	if len(rest) > 0 && rest[0] == p.comment {
		section.Leading = &ast.Comment{
			Pos:    ast.Position{Filename: st.filename, Line: st.line, Column: closeAt + 1 + ws + 1},
			Text:   string(rest[1:]),
			Kind:   ast.Leading,
			Indent: ws,
		}
	}

	st.doc.Sections = append(st.doc.Sections, section)
	st.current = section
}

// parseKey handles a line classified as a key. A line without the delimiter
// character is dropped, along with any pending trailing comment.
func (p *Parser) parseKey(st *state, line []byte, indent int) {
	di := bytes.IndexByte(line[indent:], p.delimiter)
	if di < 0 {
		st.pending = nil
		st.dropped++
		return
	}
	delimAt := indent + di

	if st.current == nil {
		st.current = st.doc.EnsureGlobal()
	}

	key := &ast.Key{
		Pos:          p.pos(st, indent),
		Name:         p.interner.InternBytes(trimRightSpace(line[indent:delimAt])),
		Trailing:     st.pending,
		Indent:       indent,
		BlanksBefore: st.blanks,
	}
	st.pending = nil

	remainder, _ := trimLeftSpace(line[delimAt+1:])
	key.Value, key.Leading = p.splitValue(st, remainder)

	st.current.Keys = append(st.current.Keys, key)
}

// splitValue splits a key's remainder (the left-trimmed text after the
// delimiter) into a value and an optional inline leading comment. The run of
// spaces and tabs between value and comment starter is recorded as the
// comment's indentation so the serializer can reproduce the exact spacing.
func (p *Parser) splitValue(st *state, remainder []byte) (string, *ast.Comment) {
	ci := bytes.IndexByte(remainder, p.comment)
	if ci < 0 {
		return string(trimRightSpace(remainder)), nil
	}

	if ci == 0 {
		// Comment starter immediately after the delimiter: an explicitly
		// empty value with an empty comment still round-trips.
		return "", &ast.Comment{
			Pos:  ast.Position{Filename: st.filename, Line: st.line},
			Text: string(remainder[1:]),
			Kind: ast.Leading,
		}
	}

	ws := 0
	for i := ci - 1; i >= 0 && isSpace(remainder[i]); i-- {
		ws++
	}

	comment := &ast.Comment{
		Pos:    ast.Position{Filename: st.filename, Line: st.line},
		Text:   string(remainder[ci+1:]),
		Kind:   ast.Leading,
		Indent: ws,
	}

	return string(remainder[:ci-ws]), comment
}

func (p *Parser) pos(st *state, indent int) ast.Position {
	return ast.Position{Filename: st.filename, Line: st.line, Column: indent + 1}
}
