// internal/writers/json.go
package writers

import (
	"context"
	"io"

	"kofamscan/internal/hitdetail"
	"kofamscan/internal/jsonutil"
	"kofamscan/internal/result"
	"kofamscan/pkg/api"
)

func init() {
	Register(FormatJSON, func(ctx context.Context, w io.Writer, r Report) error {
		list, err := toAPIGenes(ctx, r)
		if err != nil {
			return err
		}
		return jsonutil.EncodePretty(w, list)
	})
	Register(FormatJSONL, func(ctx context.Context, w io.Writer, r Report) error {
		list, err := toAPIGenes(ctx, r)
		if err != nil {
			return err
		}
		return jsonutil.EncodeLines(w, list)
	})
}

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h result.Hit) api.HitV1 {
	v := api.HitV1{
		KO:             h.KOID(),
		Definition:     h.Definition(),
		Score:          h.Score,
		EValue:         h.EValue,
		AboveThreshold: h.AboveThreshold(),
	}
	if h.KO != nil {
		if t, ok := h.KO.Threshold.Value(); ok {
			v.Threshold = &t
		}
	}
	return v
}

// toAPIGenes follows the detail report's rules: query order, hits by
// descending score, unannotated genes only when asked for.
func toAPIGenes(ctx context.Context, r Report) ([]api.GeneHitsV1, error) {
	out := []api.GeneHitsV1{}
	for _, q := range r.Source.QueryList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hits := r.Source.ForGene(q)
		if len(hits) == 0 && !r.Detail.ReportUnannotated {
			continue
		}
		g := api.GeneHitsV1{Gene: q, Hits: make([]api.HitV1, 0, len(hits))}
		for _, h := range hitdetail.SortHits(hits) {
			g.Hits = append(g.Hits, ToAPIHit(h))
		}
		out = append(out, g)
	}
	return out, nil
}
