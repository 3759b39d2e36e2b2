package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/confit/ast"
	"github.com/robinvdvleuten/confit/codec"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	errHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
// The source may be nil when the input was encoded (compressed/encrypted),
// in which case errors render without a source excerpt.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(err.Error()))

	if errors.Is(err, codec.ErrWrongPassword) {
		buf.WriteByte('\n')
		buf.WriteString(errHintStyle.Render("hint: check --password or CONFIT_PASSWORD"))
	}

	if e, ok := err.(interface{ GetPosition() ast.Position }); ok && r.source != nil {
		pos := e.GetPosition()
		if !pos.IsZero() {
			buf.WriteString("\n\n")
			buf.WriteString(r.sourceContext(pos))
		}
	}

	return buf.String()
}

// sourceContext renders the lines around a position with a caret under the
// offending column.
func (r *ErrorRenderer) sourceContext(pos ast.Position) string {
	var buf strings.Builder

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := pos.Line - 3
	endLine := pos.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(sourceLines[i]))
		buf.WriteByte('\n')

		if i == pos.Line-1 && pos.Column > 0 {
			buf.WriteString("   ")
			for j := 0; j < pos.Column-1; j++ {
				buf.WriteByte(' ')
			}
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
