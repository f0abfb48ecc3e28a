// internal/writers/mapper.go
package writers

import (
	"context"
	"io"
	"strings"

	"kofamscan/internal/hitdetail"
	"kofamscan/internal/result"
)

// KEGG Mapper input: one line per query gene, followed by the KO(s) of its
// above-threshold hits. Genes without such hits are listed alone.

func init() {
	Register(FormatMapper, func(ctx context.Context, w io.Writer, r Report) error {
		return writeMapper(ctx, w, r.Source, 1)
	})
	Register(FormatMapperOneLine, func(ctx context.Context, w io.Writer, r Report) error {
		return writeMapper(ctx, w, r.Source, -1)
	})
}

// writeMapper keeps at most limit KOs per gene (limit < 0 keeps all),
// highest score first, each KO once.
func writeMapper(ctx context.Context, w io.Writer, src hitdetail.Source, limit int) error {
	for _, q := range src.QueryList() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := append([]string{q}, mapperKOs(src.ForGene(q), limit)...)
		if _, err := io.WriteString(w, strings.Join(fields, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func mapperKOs(hits []result.Hit, limit int) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, h := range hitdetail.SortHits(hits) {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if !h.AboveThreshold() {
			continue
		}
		if _, dup := seen[h.KOID()]; dup {
			continue
		}
		seen[h.KOID()] = struct{}{}
		out = append(out, h.KOID())
	}
	return out
}
