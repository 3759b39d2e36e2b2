// Package loader provides functionality for loading and saving configuration
// files with the codec pipeline applied around the parser. Loading runs
// decrypt, decompress and character set decode before the scan; saving runs
// the inverse pipeline after serialization.
//
// Example usage:
//
//	// Load a plain UTF-8 file
//	ldr := loader.New()
//	doc, err := ldr.Load(ctx, "settings.conf")
//
//	// Load a compressed, encrypted file
//	ldr := loader.New(loader.WithCompression(), loader.WithPassword("secret"))
//	doc, err := ldr.Load(ctx, "settings.conf")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robinvdvleuten/confit/ast"
	"github.com/robinvdvleuten/confit/codec"
	"github.com/robinvdvleuten/confit/formatter"
	"github.com/robinvdvleuten/confit/parser"
	"github.com/robinvdvleuten/confit/telemetry"
)

// Loader handles loading, decoding, parsing and saving of configuration
// files. Configure it using functional options passed to New:
//
//	ldr := loader.New(loader.WithEncoding("windows-1252"))
type Loader struct {
	// Compression enables the gzip codec around the raw byte stream.
	Compression bool

	// Password enables the encryption codec when non-empty.
	Password string

	// Encoding is the IANA character set name of the text; empty means UTF-8.
	Encoding string

	parserOpts    []parser.Option
	formatterOpts []formatter.Option
}

// Option configures how files are loaded and saved.
type Option func(*Loader)

// WithCompression enables the gzip codec.
func WithCompression() Option {
	return func(l *Loader) { l.Compression = true }
}

// WithPassword enables the encryption codec with the given password.
func WithPassword(password string) Option {
	return func(l *Loader) { l.Password = password }
}

// WithEncoding sets the character set of the text stream.
func WithEncoding(name string) Option {
	return func(l *Loader) { l.Encoding = name }
}

// WithParserOptions forwards options to the parser, e.g. custom syntax
// characters.
func WithParserOptions(opts ...parser.Option) Option {
	return func(l *Loader) { l.parserOpts = append(l.parserOpts, opts...) }
}

// WithFormatterOptions forwards options to the formatter used by Save.
func WithFormatterOptions(opts ...formatter.Option) Option {
	return func(l *Loader) { l.formatterOpts = append(l.formatterOpts, opts...) }
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads and parses a configuration file.
func (l *Loader) Load(ctx context.Context, filename string) (*ast.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, data)
}

// LoadBytes decodes and parses in-memory content. The filename is only used
// for positions and timing labels.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*ast.Document, error) {
	collector := telemetry.FromContext(ctx)

	data, err := l.decode(ctx, collector, filename, data)
	if err != nil {
		return nil, err
	}

	timer := collector.Start(fmt.Sprintf("parse %s", filepath.Base(filename)))
	doc, err := parser.New(l.parserOpts...).Parse(ctx, filename, data)
	timer.End()

	return doc, err
}

// decode runs the inbound codec pipeline: decrypt, decompress, charset
// decode. The context is checked between stages; the stages themselves run to
// completion.
func (l *Loader) decode(ctx context.Context, collector telemetry.Collector, filename string, data []byte) ([]byte, error) {
	stages := []struct {
		name    string
		enabled bool
		run     func([]byte) ([]byte, error)
	}{
		{"decrypt", l.Password != "", func(b []byte) ([]byte, error) { return codec.Decrypt(b, l.Password) }},
		{"decompress", l.Compression, codec.Decompress},
		{"decode", l.Encoding != "", func(b []byte) ([]byte, error) { return codec.DecodeText(b, l.Encoding) }},
	}

	for _, stage := range stages {
		if !stage.enabled {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		timer := collector.Start(stage.name)
		out, err := stage.run(data)
		timer.End()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", stage.name, filename, err)
		}
		data = out
	}

	return data, nil
}

// Encode serializes the document and runs the outbound codec pipeline:
// charset encode, compress, encrypt.
func (l *Loader) Encode(ctx context.Context, doc *ast.Document) ([]byte, error) {
	collector := telemetry.FromContext(ctx)

	timer := collector.Start("format")
	text, err := formatter.New(l.formatterOpts...).FormatString(doc)
	timer.End()
	if err != nil {
		return nil, err
	}
	data := []byte(text)

	stages := []struct {
		name    string
		enabled bool
		run     func([]byte) ([]byte, error)
	}{
		{"encode", l.Encoding != "", func(b []byte) ([]byte, error) { return codec.EncodeText(b, l.Encoding) }},
		{"compress", l.Compression, codec.Compress},
		{"encrypt", l.Password != "", func(b []byte) ([]byte, error) { return codec.Encrypt(b, l.Password) }},
	}

	for _, stage := range stages {
		if !stage.enabled {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		timer := collector.Start(stage.name)
		out, err := stage.run(data)
		timer.End()
		if err != nil {
			return nil, err
		}
		data = out
	}

	return data, nil
}

// Save serializes the document and writes it to filename, applying the
// outbound codec pipeline.
func (l *Loader) Save(ctx context.Context, filename string, doc *ast.Document) error {
	data, err := l.Encode(ctx, doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
