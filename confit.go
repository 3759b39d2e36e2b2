// Package confit provides a format-preserving parser and serializer for
// sectioned key/value configuration text.
//
// Comments, blank lines and indentation are treated as first-class,
// reconstructible metadata rather than discarded noise: parsing a file and
// serializing the resulting document reproduces the original text
// byte-for-byte (modulo a handful of documented normalizations), so
// round-tripping a file through a program never destroys a human's comments
// or spacing.
//
// The root package offers convenience functions for the common case. The
// subpackages expose the full surface: parser (the scan core), formatter
// (the serializer), ast (the document model), codec (compression, encryption
// and character set transforms), and loader (file loading with the codec
// pipeline).
package confit

import (
	"context"

	"github.com/robinvdvleuten/confit/ast"
	"github.com/robinvdvleuten/confit/formatter"
	"github.com/robinvdvleuten/confit/parser"
)

// Parse parses configuration text using the default syntax characters
// (';' comments, '[' and ']' section wrappers, '=' key delimiter).
func Parse(text string) (*ast.Document, error) {
	return parser.ParseString(context.Background(), text)
}

// ParseBytes parses configuration bytes using the default syntax characters.
func ParseBytes(data []byte) (*ast.Document, error) {
	return parser.ParseBytes(context.Background(), data)
}

// Format serializes a document back to text using the default syntax
// characters.
func Format(doc *ast.Document) (string, error) {
	return formatter.New().FormatString(doc)
}
