package fasta

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = `>gene1 hypothetical protein
MKV
LLA
>gene2
MSTN
>
MMM
>gene3	tab separated
`

func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.faa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestReadIDs_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.faa")
	require.NoError(t, os.WriteFile(path, []byte(plain), 0o644))

	ids, err := ReadIDs(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gene1", "gene2", "gene3"}, ids)
}

func TestReadIDs_Gzip(t *testing.T) {
	ids, err := ReadIDs(context.Background(), writeGz(t, plain))
	require.NoError(t, err)
	assert.Equal(t, []string{"gene1", "gene2", "gene3"}, ids)
}

func TestReadIDs_GzipByMagicWithoutSuffix(t *testing.T) {
	gz := writeGz(t, plain)
	renamed := strings.TrimSuffix(gz, ".gz")
	require.NoError(t, os.Rename(gz, renamed))

	ids, err := ReadIDs(context.Background(), renamed)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestReadIDs_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	ids, err := ReadIDs(context.Background(), "-")
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestReadIDs_Missing(t *testing.T) {
	_, err := ReadIDs(context.Background(), filepath.Join(t.TempDir(), "nope.faa"))
	assert.Error(t, err)
}

func TestScanHeaders_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ScanHeaders(ctx, strings.NewReader(plain), func(string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
