// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ReadIDs returns the record ids of the FASTA file at path in file order.
// The id is the first whitespace-delimited word of each header.
func ReadIDs(ctx context.Context, path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var ids []string
	err = ScanHeaders(ctx, rc, func(id string) error {
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}

// ScanHeaders calls emit with the id of every '>' header in r.
// Sequence lines are skipped. Cancellation via ctx is checked per line.
func ScanHeaders(ctx context.Context, r io.Reader, emit func(id string) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 || line[0] != '>' {
			continue
		}
		id := parseHeaderID(line[1:])
		if id == "" {
			continue
		}
		if err := emit(id); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

func parseHeaderID(h []byte) string {
	f := bytes.Fields(h)
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}
