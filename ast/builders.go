package ast

// Constructor functions for programmatically building document nodes. These
// builders make it easy to generate configuration files from code and to edit
// parsed documents before re-serializing them.
//
// The builders use functional options for trivia, following Go idioms for
// configurable constructors.

// NodeOption configures trivia on a newly built section or key.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	indent       int
	blanksBefore int
	leading      *Comment
	trailing     *Comment
}

// WithIndent sets the indentation of the element's source line.
func WithIndent(n int) NodeOption {
	return func(c *nodeConfig) { c.indent = n }
}

// WithBlanksBefore sets the number of blank lines emitted before the element.
func WithBlanksBefore(n int) NodeOption {
	return func(c *nodeConfig) { c.blanksBefore = n }
}

// WithLeadingComment attaches an inline comment that will be emitted on the
// element's own line.
func WithLeadingComment(text string) NodeOption {
	return func(c *nodeConfig) {
		c.leading = &Comment{Text: text, Kind: Leading, Indent: 1}
	}
}

// WithTrailingComment attaches a comment block emitted on its own line(s)
// directly before the element. Multi-line text should be "\n"-joined.
func WithTrailingComment(text string) NodeOption {
	return func(c *nodeConfig) {
		c.trailing = &Comment{Text: text, Kind: Trailing}
	}
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddSection creates a section with the given name, appends it to the
// document, and returns it.
//
// Example:
//
//	doc := ast.NewDocument()
//	srv := doc.AddSection("server", ast.WithBlanksBefore(1))
//	srv.AddKey("host", "localhost")
func (d *Document) AddSection(name string, opts ...NodeOption) *Section {
	var c nodeConfig
	for _, opt := range opts {
		opt(&c)
	}

	s := &Section{
		Name:         name,
		Leading:      c.leading,
		Trailing:     c.trailing,
		Indent:       c.indent,
		BlanksBefore: c.blanksBefore,
	}
	d.Sections = append(d.Sections, s)
	return s
}

// EnsureGlobal returns the reserved global section, creating and prepending
// it if it does not exist yet. The global section always sorts first so that
// its keys serialize before any section header.
func (d *Document) EnsureGlobal() *Section {
	if g := d.Global(); g != nil {
		return g
	}
	g := &Section{Name: GlobalSection}
	d.Sections = append([]*Section{g}, d.Sections...)
	return g
}

// AddKey creates a key with the given name and value, appends it to the
// section, and returns it.
func (s *Section) AddKey(name, value string, opts ...NodeOption) *Key {
	var c nodeConfig
	for _, opt := range opts {
		opt(&c)
	}

	k := &Key{
		Name:         name,
		Value:        value,
		Leading:      c.leading,
		Trailing:     c.trailing,
		Indent:       c.indent,
		BlanksBefore: c.blanksBefore,
	}
	s.Keys = append(s.Keys, k)
	return k
}

// SetValue replaces the key's value, leaving all formatting trivia untouched.
func (k *Key) SetValue(value string) {
	k.Value = value
}
