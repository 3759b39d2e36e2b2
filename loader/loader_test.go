package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/confit/codec"
	"github.com/robinvdvleuten/confit/formatter"
	"github.com/robinvdvleuten/confit/parser"
)

func TestLoadPlainFile(t *testing.T) {
	doc, err := New().Load(context.Background(), "../testdata/settings.conf")
	assert.NoError(t, err)
	assert.Equal(t, "localhost", doc.Section("server").Key("host").Value)

	// Positions carry the loaded filename.
	assert.Equal(t, "../testdata/settings.conf", doc.Section("server").Pos.Filename)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), "../testdata/nope.conf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadBytes(t *testing.T) {
	doc, err := New().LoadBytes(context.Background(), "inline.conf", []byte("[s]\nk = v\n"))
	assert.NoError(t, err)
	assert.Equal(t, "v", doc.Section("s").Key("k").Value)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	input := "; header\n[server]\nhost = localhost ;local only\n\nport = 8080\n"

	doc, err := New().LoadBytes(ctx, "", []byte(input))
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.conf")
	assert.NoError(t, New().Save(ctx, path, doc))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestCompressedRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := New(WithCompression())

	doc, err := parser.ParseString(ctx, "[s]\nk = v\n")
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.conf.gz")
	assert.NoError(t, l.Save(ctx, path, doc))

	// The bytes on disk are a gzip stream, not text.
	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	loaded, err := l.Load(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, "v", loaded.Section("s").Key("k").Value)
}

func TestEncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := New(WithCompression(), WithPassword("secret"))

	doc, err := parser.ParseString(ctx, "[secrets]\ntoken = hunter2\n")
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.conf.enc")
	assert.NoError(t, l.Save(ctx, path, doc))

	loaded, err := l.Load(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, "hunter2", loaded.Section("secrets").Key("token").Value)

	_, err = New(WithCompression(), WithPassword("wrong")).Load(ctx, path)
	assert.IsError(t, err, codec.ErrWrongPassword)
}

func TestEncodingRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := New(WithEncoding("ISO-8859-1"))

	doc, err := parser.ParseString(ctx, "drink = café\n")
	assert.NoError(t, err)

	data, err := l.Encode(ctx, doc)
	assert.NoError(t, err)
	// é is one byte in latin1.
	assert.Equal(t, byte(0xE9), data[len(data)-2])

	loaded, err := l.LoadBytes(ctx, "", data)
	assert.NoError(t, err)
	assert.Equal(t, "café", loaded.Global().Key("drink").Value)
}

func TestLoaderForwardsParserOptions(t *testing.T) {
	var stats parser.Stats
	l := New(WithParserOptions(
		parser.WithCommentStarter('#'),
		parser.WithStats(&stats),
	))

	doc, err := l.LoadBytes(context.Background(), "", []byte("# note\nk = v\nbroken\n"))
	assert.NoError(t, err)
	assert.Equal(t, "v", doc.Global().Key("k").Value)
	assert.Equal(t, parser.Stats{Lines: 3, DroppedLines: 1}, stats)
}

func TestLoaderForwardsFormatterOptions(t *testing.T) {
	ctx := context.Background()
	l := New(WithFormatterOptions(formatter.WithCommentColumn(12)))

	doc, err := parser.ParseString(ctx, "k = v ;c\n")
	assert.NoError(t, err)

	data, err := l.Encode(ctx, doc)
	assert.NoError(t, err)
	assert.Equal(t, "k = v       ;c\n", string(data))
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithCompression()).LoadBytes(ctx, "", []byte{0x1f, 0x8b})
	assert.IsError(t, err, context.Canceled)
}
