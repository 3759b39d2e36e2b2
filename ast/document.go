// Package ast declares the types used to represent parsed configuration documents.
//
// These types model the structure of a sectioned key/value configuration file,
// including the formatting trivia (comments, blank lines, indentation) required
// to re-serialize a document byte-for-byte. A Document can be created by parsing
// source text using the parser package, or constructed programmatically for
// generating configuration output.
package ast

import (
	"golang.org/x/exp/slices"
)

// GlobalSection is the reserved name of the implicit section that holds keys
// appearing before any explicit section header. The name starts with '@' so it
// can never be produced by a section header line (a '@' line is a key line).
const GlobalSection = "@global"

// Document represents a parsed configuration file as an ordered sequence of
// sections. Section order is semantically meaningful: the serializer emits
// sections in encounter order to reproduce the original file.
type Document struct {
	Sections []*Section
}

// Section returns the first section with the given name, or nil if the
// document contains none. Section names are not required to be unique; callers
// that care about duplicates should iterate Sections directly.
func (d *Document) Section(name string) *Section {
	i := slices.IndexFunc(d.Sections, func(s *Section) bool {
		return s.Name == name
	})
	if i < 0 {
		return nil
	}
	return d.Sections[i]
}

// Global returns the reserved global section, or nil if no keys appeared
// before the first section header.
func (d *Document) Global() *Section {
	return d.Section(GlobalSection)
}

// SectionNames returns the names of all sections in encounter order.
// Duplicate names appear once per occurrence.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}

// Len returns the total number of keys across all sections.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Keys)
	}
	return n
}

// Section represents a named group of keys introduced by a header line like
// [name]. The trivia fields record how the header appeared in the source:
// its indentation, the number of blank lines immediately before it, and any
// comments attached to it.
type Section struct {
	Pos  Position
	Name string
	Keys []*Key

	// Leading is the inline comment that followed the header on the same
	// line, e.g. the "note" in "[name] ;note". Nil if absent.
	Leading *Comment

	// Trailing is the comment block that appeared on its own line(s) directly
	// before this section was read, sharing the previous element's context.
	// Nil if absent.
	Trailing *Comment

	// Indent counts the whitespace characters before the header's opening
	// wrapper. Tabs and spaces both count as one.
	Indent int

	// BlanksBefore counts the blank lines immediately preceding the header.
	BlanksBefore int
}

// Key returns the first key with the given name, or nil if the section
// contains none.
func (s *Section) Key(name string) *Key {
	i := slices.IndexFunc(s.Keys, func(k *Key) bool {
		return k.Name == name
	})
	if i < 0 {
		return nil
	}
	return s.Keys[i]
}

// IsGlobal reports whether this is the reserved global section.
func (s *Section) IsGlobal() bool {
	return s.Name == GlobalSection
}

// Key represents a single name/value pair within a section, together with the
// formatting trivia needed to reproduce its source line.
type Key struct {
	Pos   Position
	Name  string
	Value string

	// Leading is the inline comment that followed the value on the same line,
	// e.g. the "trail" in "k = v ;trail". Its Indent records the exact run of
	// spaces and tabs between value and comment starter. Nil if absent.
	Leading *Comment

	// Trailing is the comment block from the comment-only line(s) directly
	// preceding this key. Nil if absent.
	Trailing *Comment

	Indent       int
	BlanksBefore int
}
