package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAddSection(t *testing.T) {
	doc := NewDocument()
	s := doc.AddSection("server",
		WithIndent(2),
		WithBlanksBefore(1),
		WithLeadingComment("inline"),
		WithTrailingComment("above"),
	)

	assert.Equal(t, []*Section{s}, doc.Sections)
	assert.Equal(t, "server", s.Name)
	assert.Equal(t, 2, s.Indent)
	assert.Equal(t, 1, s.BlanksBefore)
	assert.Equal(t, &Comment{Text: "inline", Kind: Leading, Indent: 1}, s.Leading)
	assert.Equal(t, &Comment{Text: "above", Kind: Trailing}, s.Trailing)
}

func TestAddKey(t *testing.T) {
	doc := NewDocument()
	s := doc.AddSection("server")
	k := s.AddKey("host", "localhost", WithIndent(4))

	assert.Equal(t, []*Key{k}, s.Keys)
	assert.Equal(t, "host", k.Name)
	assert.Equal(t, "localhost", k.Value)
	assert.Equal(t, 4, k.Indent)
	assert.Zero(t, k.Leading)
}

func TestSetValue(t *testing.T) {
	k := &Key{Name: "host", Value: "localhost", Indent: 2, Leading: &Comment{Text: "note"}}
	k.SetValue("0.0.0.0")

	assert.Equal(t, "0.0.0.0", k.Value)
	// Trivia survives value edits.
	assert.Equal(t, 2, k.Indent)
	assert.Equal(t, "note", k.Leading.Text)
}
