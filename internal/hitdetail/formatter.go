// internal/hitdetail/formatter.go
package hitdetail

import (
	"context"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"kofamscan/internal/result"
)

// Source is the read-only input of a report.
type Source interface {
	// QueryList returns every query gene in report order, including genes
	// without hits. Order and duplicates are preserved verbatim.
	QueryList() []string
	// ForGene returns the hits of one gene in any order. Unknown genes
	// yield an empty slice.
	ForGene(gene string) []result.Hit
}

// Options are fixed when the Formatter is built.
type Options struct {
	// ReportUnannotated emits a placeholder row for genes without hits.
	// When false such genes contribute nothing.
	ReportUnannotated bool

	// ShowThreshold adds the "thrshld" column between KO and score.
	ShowThreshold bool

	// KeepLongNames disables gene-name truncation; the gene column widens
	// to the longest query name instead.
	KeepLongNames bool

	// Workers > 1 renders gene blocks concurrently. Output is identical to
	// the sequential path.
	Workers int
}

// DefaultOptions is the classic hit-detail layout.
var DefaultOptions = Options{}

// Formatter renders a Source as a fixed-column hit-detail table.
type Formatter struct {
	opts Options
}

// New returns a Formatter with the given options.
func New(opts Options) *Formatter { return &Formatter{opts: opts} }

// Options returns the formatter's configuration.
func (f *Formatter) Options() Options { return f.opts }

// Header returns the title and delimiter lines, each newline-terminated.
func (f *Formatter) Header() string {
	return header(newLayout(f.opts))
}

// Row renders one hit with the fixed gene-name width, without a newline.
func (f *Formatter) Row(h result.Hit) string {
	return newLayout(f.opts).hitLine(h)
}

// EmptyRow renders the placeholder row for gene, without a newline.
func (f *Formatter) EmptyRow(gene string) string {
	return newLayout(f.opts).emptyLine(gene)
}

func header(l layout) string {
	return l.titleLine() + "\n" + l.delimiterLine() + "\n"
}

// Format writes the full report for src to w. It stops at the first write
// error; whatever reached w by then is incomplete and should be discarded.
func (f *Formatter) Format(w io.Writer, src Source) error {
	return f.FormatContext(context.Background(), w, src)
}

// FormatContext is Format with cancellation of the concurrent render path.
func (f *Formatter) FormatContext(ctx context.Context, w io.Writer, src Source) error {
	queries := src.QueryList()
	l := newLayout(f.opts).widenFor(queries)

	if _, err := io.WriteString(w, header(l)); err != nil {
		return err
	}
	if f.opts.Workers > 1 && len(queries) > 1 {
		return f.formatConcurrent(ctx, w, l, src, queries)
	}
	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		block := f.block(l, q, src.ForGene(q))
		if block == "" {
			continue
		}
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}

// formatConcurrent renders every gene block up front on a bounded group,
// then writes the blocks in query order.
func (f *Formatter) formatConcurrent(ctx context.Context, w io.Writer, l layout, src Source, queries []string) error {
	blocks := make([]string, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.Workers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			blocks[i] = f.block(l, q, src.ForGene(q))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if _, err := io.WriteString(w, b); err != nil {
			return err
		}
	}
	return nil
}

// block renders one gene's rows, newline-terminated.
func (f *Formatter) block(l layout, gene string, hits []result.Hit) string {
	if len(hits) == 0 {
		if !f.opts.ReportUnannotated {
			return ""
		}
		return l.emptyLine(gene) + "\n"
	}
	var b strings.Builder
	for _, h := range SortHits(hits) {
		b.WriteString(l.hitLine(h))
		b.WriteByte('\n')
	}
	return b.String()
}

// SortHits returns a copy of hits ordered by descending score. Equal scores
// keep their input order.
func SortHits(hits []result.Hit) []result.Hit {
	out := append([]result.Hit(nil), hits...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
