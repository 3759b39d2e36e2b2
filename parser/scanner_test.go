package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLineScannerSplitsLines(t *testing.T) {
	sc := newLineScanner([]byte("a\nb\nc"))

	line, ok := sc.next()
	assert.True(t, ok)
	assert.Equal(t, "a", string(line))
	assert.Equal(t, 1, sc.line)

	line, ok = sc.next()
	assert.True(t, ok)
	assert.Equal(t, "b", string(line))

	line, ok = sc.next()
	assert.True(t, ok)
	assert.Equal(t, "c", string(line))
	assert.Equal(t, 3, sc.line)

	_, ok = sc.next()
	assert.False(t, ok)
}

func TestLineScannerCRLF(t *testing.T) {
	sc := newLineScanner([]byte("a\r\nb\r\n"))

	line, _ := sc.next()
	assert.Equal(t, "a", string(line))
	line, _ = sc.next()
	assert.Equal(t, "b", string(line))
	_, ok := sc.next()
	assert.False(t, ok)
}

func TestLineScannerEmptyLines(t *testing.T) {
	sc := newLineScanner([]byte("\n\nx\n"))

	line, _ := sc.next()
	assert.Equal(t, "", string(line))
	line, _ = sc.next()
	assert.Equal(t, "", string(line))
	line, _ = sc.next()
	assert.Equal(t, "x", string(line))
}

func TestLineScannerEmptyInput(t *testing.T) {
	sc := newLineScanner(nil)
	_, ok := sc.next()
	assert.False(t, ok)
	assert.Equal(t, 0, sc.line)
}

func TestClassify(t *testing.T) {
	p := New()

	tests := []struct {
		line   string
		kind   lineKind
		indent int
	}{
		{"", lineBlank, 0},
		{"   ", lineBlank, 0},
		{"\t \t", lineBlank, 0},
		{";comment", lineComment, 0},
		{"  ;comment", lineComment, 2},
		{"[section]", lineSection, 0},
		{"\t[section]", lineSection, 1},
		{"key = value", lineKey, 0},
		{"    key = value", lineKey, 4},
		{"= odd but a key line", lineKey, 0},
		{"] also a key line", lineKey, 0},
	}

	for _, test := range tests {
		kind, indent := p.classify([]byte(test.line))
		assert.Equal(t, test.kind, kind, "line %q", test.line)
		assert.Equal(t, test.indent, indent, "line %q", test.line)
	}
}

func TestClassifyCustomCharacters(t *testing.T) {
	p := New(WithCommentStarter('#'), WithSectionWrappers('<', '>'))

	kind, _ := p.classify([]byte("#c"))
	assert.Equal(t, lineComment, kind)

	kind, _ = p.classify([]byte("<s>"))
	assert.Equal(t, lineSection, kind)

	// The default characters are plain key content in this dialect.
	kind, _ = p.classify([]byte(";not a comment"))
	assert.Equal(t, lineKey, kind)

	kind, _ = p.classify([]byte("[not a section]"))
	assert.Equal(t, lineKey, kind)
}

func TestTrimHelpers(t *testing.T) {
	rest, n := trimLeftSpace([]byte("  \tx y "))
	assert.Equal(t, "x y ", string(rest))
	assert.Equal(t, 3, n)

	assert.Equal(t, "  \tx y", string(trimRightSpace([]byte("  \tx y \t"))))
	assert.Equal(t, "", string(trimRightSpace([]byte("   "))))
}
