package parser

// The scanner implements a zero-copy line splitter and classifier.
//
// The zero-copy approach:
// - Lines are slices into the source buffer, never copied
// - Classification inspects bytes in place
// - String materialization happens only when an element is created

// lineKind is the classification of a single source line, decided by the
// first non-whitespace character.
type lineKind uint8

const (
	lineBlank   lineKind = iota // only spaces/tabs, or empty
	lineComment                 // starts with the comment starter
	lineSection                 // starts with the section-open wrapper
	lineKey                     // anything else
)

func (k lineKind) String() string {
	switch k {
	case lineBlank:
		return "blank"
	case lineComment:
		return "comment"
	case lineSection:
		return "section"
	default:
		return "key"
	}
}

// lineScanner splits a source buffer into lines. Both "\n" and "\r\n" line
// terminators are recognized; the terminator is not part of the returned line.
type lineScanner struct {
	source []byte
	pos    int
	line   int // line number of the most recently returned line (1-indexed)
}

func newLineScanner(source []byte) *lineScanner {
	return &lineScanner{source: source}
}

// next returns the next line and true, or nil and false when the source is
// exhausted. The returned slice aliases the source buffer.
func (s *lineScanner) next() ([]byte, bool) {
	if s.pos >= len(s.source) {
		return nil, false
	}

	start := s.pos
	end := len(s.source)
	for i := s.pos; i < len(s.source); i++ {
		if s.source[i] == '\n' {
			end = i
			s.pos = i + 1
			goto done
		}
	}
	s.pos = len(s.source)

done:
	s.line++

	// Strip a carriage return left over from a \r\n terminator.
	if end > start && s.source[end-1] == '\r' {
		end--
	}

	return s.source[start:end], true
}

// isSpace reports whether c counts as line-internal whitespace. Only spaces
// and tabs qualify; line terminators never reach classification.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// classify determines a line's kind and the column of its first
// non-whitespace character. Tabs and spaces both count one column of
// indentation.
func (p *Parser) classify(line []byte) (lineKind, int) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if isSpace(c) {
			continue
		}
		switch c {
		case p.comment:
			return lineComment, i
		case p.sectionOpen:
			return lineSection, i
		default:
			return lineKey, i
		}
	}
	return lineBlank, 0
}

// trimLeftSpace returns line with leading spaces and tabs removed, along with
// the number of characters trimmed.
func trimLeftSpace(line []byte) ([]byte, int) {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return line[i:], i
}

// trimRightSpace returns line with trailing spaces and tabs removed.
func trimRightSpace(line []byte) []byte {
	end := len(line)
	for end > 0 && isSpace(line[end-1]) {
		end--
	}
	return line[:end]
}
