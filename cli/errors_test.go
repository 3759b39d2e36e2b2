package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/confit/ast"
	"github.com/robinvdvleuten/confit/codec"
)

// positionedError carries a source position, like the loader's errors do.
type positionedError struct {
	msg string
	pos ast.Position
}

func (e *positionedError) Error() string             { return e.msg }
func (e *positionedError) GetPosition() ast.Position { return e.pos }

func TestErrorRenderer_RenderPlainError(t *testing.T) {
	renderer := NewErrorRenderer(nil)
	out := renderer.Render(errors.New("something broke"))
	assert.Contains(t, out, "something broke")
}

func TestErrorRenderer_RenderWrongPasswordHint(t *testing.T) {
	renderer := NewErrorRenderer(nil)
	out := renderer.Render(fmt.Errorf("decrypt app.conf: %w", codec.ErrWrongPassword))

	assert.Contains(t, out, "decrypt app.conf")
	assert.Contains(t, out, "hint: check --password or CONFIT_PASSWORD")
}

func TestErrorRenderer_RenderWithSourceContext(t *testing.T) {
	source := `[server]
host = localhost
port = not-a-number
timeout = 30s`

	renderer := NewErrorRenderer([]byte(source))
	out := renderer.Render(&positionedError{
		msg: "value is not an integer",
		pos: ast.Position{Filename: "app.conf", Line: 3, Column: 8},
	})

	assert.Contains(t, out, "value is not an integer")
	assert.Contains(t, out, "port = not-a-number")
	assert.Contains(t, out, "^")

	// Source lines are indented with 3 spaces.
	found := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "   ") && strings.Contains(line, "port = not-a-number") {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestErrorRenderer_NoContextWithoutSource(t *testing.T) {
	renderer := NewErrorRenderer(nil)
	out := renderer.Render(&positionedError{
		msg: "value is not an integer",
		pos: ast.Position{Filename: "app.conf", Line: 3, Column: 8},
	})

	assert.False(t, strings.Contains(out, "^"))
}

func TestErrorRenderer_PositionAtFirstLine(t *testing.T) {
	source := "broken line\nk = v"

	renderer := NewErrorRenderer([]byte(source))
	out := renderer.Render(&positionedError{
		msg: "malformed line",
		pos: ast.Position{Line: 1, Column: 1},
	})

	// Bounds are clamped; no panic and the offending line is shown.
	assert.Contains(t, out, "broken line")
	assert.Contains(t, out, "^")
}
