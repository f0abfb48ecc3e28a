// internal/hmmout/tblout.go
package hmmout

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kofamscan/internal/fasta"
)

// Row is one per-target line of an HMMER --tblout table.
type Row struct {
	Target      string // sequence name (the gene)
	Query       string // profile name (the KO)
	FullEValue  float64
	FullScore   float64
	DomEValue   float64 // best single domain
	DomScore    float64
	Description string
}

// minimum whitespace columns before the free-text description
const tbloutColumns = 18

// Parse reads --tblout rows from r and calls emit for each one.
// name labels error messages ("name:line ...").
func Parse(r io.Reader, name string, emit func(Row) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		row, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d %w", name, ln, err)
		}
		if err := emit(row); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ParseFile is Parse over a (possibly gzipped) file; "-" reads stdin.
func ParseFile(ctx context.Context, path string, emit func(Row) error) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Parse(rc, path, func(row Row) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return emit(row)
	})
}

func parseLine(line string) (Row, error) {
	f := strings.Fields(line)
	if len(f) < tbloutColumns {
		return Row{}, fmt.Errorf("bad field count: want at least %d, got %d", tbloutColumns, len(f))
	}
	row := Row{Target: f[0], Query: f[2]}
	if len(f) > tbloutColumns {
		row.Description = strings.Join(f[tbloutColumns:], " ")
	}
	num := []struct {
		col string
		s   string
		dst *float64
	}{
		{"full E-value", f[4], &row.FullEValue},
		{"full score", f[5], &row.FullScore},
		{"domain E-value", f[7], &row.DomEValue},
		{"domain score", f[8], &row.DomScore},
	}
	for _, n := range num {
		v, err := strconv.ParseFloat(n.s, 64)
		if err != nil {
			return Row{}, fmt.Errorf("bad %s %q: %w", n.col, n.s, err)
		}
		*n.dst = v
	}
	return row, nil
}
