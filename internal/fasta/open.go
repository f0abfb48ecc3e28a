// internal/fasta/open.go
package fasta

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// gzipFile closes the decompressor, then the file underneath.
type gzipFile struct {
	*gzip.Reader
	file io.Closer
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open returns a reader for path ("-" is stdin). Gzip input is recognized by
// its magic bytes, so compressed stdin works too.
func Open(path string) (io.ReadCloser, error) {
	var f io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f = fh
	}

	br := bufio.NewReaderSize(f, 64<<10)
	if sig, _ := br.Peek(len(gzipMagic)); string(sig) != string(gzipMagic) {
		return struct {
			io.Reader
			io.Closer
		}{br, f}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return gzipFile{Reader: gr, file: f}, nil
}
