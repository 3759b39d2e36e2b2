package ast

// CommentKind distinguishes how a comment relates to the element it is
// attached to.
type CommentKind int

const (
	// Leading comments precede and describe the next element. They are
	// gathered from the remainder of the element's own header or value line,
	// never across multiple lines.
	Leading CommentKind = iota

	// Trailing comments share the previous element's context, appearing on
	// their own line(s) directly after that element with no section or key
	// content of their own.
	Trailing
)

func (k CommentKind) String() string {
	switch k {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// Comment represents comment text attached to a section or key. A trailing
// comment accumulated from consecutive comment-only lines stores the line
// texts joined by "\n".
type Comment struct {
	Pos  Position
	Text string
	Kind CommentKind

	// Indent counts the whitespace characters before the comment starter.
	// For an inline leading comment on a key line this is the exact run of
	// spaces and tabs separating the value from the starter, preserved so the
	// serializer can reproduce the original spacing.
	Indent int

	// BlanksBefore counts the blank lines immediately preceding the comment.
	// Only meaningful for trailing comments, which own their source lines.
	BlanksBefore int
}

// Lines returns the comment text split into its accumulated lines.
// A single-line comment yields a one-element slice.
func (c *Comment) Lines() []string {
	if c == nil {
		return nil
	}
	return splitLines(c.Text)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
