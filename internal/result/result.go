// internal/result/result.go
package result

import (
	"sort"

	"kofamscan/internal/ko"
)

// Hit is one gene → KO match.
type Hit struct {
	GeneName string
	KO       *ko.KO
	Score    float64
	EValue   float64
}

// AboveThreshold reports whether the hit meets its KO's calibrated threshold.
// A hit without a KO, or against a KO with no threshold, never does.
func (h Hit) AboveThreshold() bool {
	if h.KO == nil {
		return false
	}
	return h.KO.Threshold.Admits(h.Score)
}

// KOID returns the KO identifier, or "" when the hit carries no KO.
func (h Hit) KOID() string {
	if h.KO == nil {
		return ""
	}
	return h.KO.ID
}

// Definition returns the KO definition, or "" when the hit carries no KO.
func (h Hit) Definition() string {
	if h.KO == nil {
		return ""
	}
	return h.KO.Definition
}

// Result holds the query list and the hits recorded per gene.
// Query order and multiplicity are whatever the caller supplied.
type Result struct {
	queries []string
	hits    map[string][]Hit
}

// New returns an empty Result over the given queries.
func New(queries ...string) *Result {
	return &Result{
		queries: append([]string(nil), queries...),
		hits:    map[string][]Hit{},
	}
}

// AddQuery appends a gene to the query list.
func (r *Result) AddQuery(name string) { r.queries = append(r.queries, name) }

// Add records a hit under its gene name. It does not touch the query list.
func (r *Result) Add(h Hit) {
	if r.hits == nil {
		r.hits = map[string][]Hit{}
	}
	r.hits[h.GeneName] = append(r.hits[h.GeneName], h)
}

// QueryList returns the genes in report order.
func (r *Result) QueryList() []string {
	if r == nil {
		return nil
	}
	return r.queries
}

// ForGene returns the hits recorded for gene, in insertion order.
// Unknown genes yield nil.
func (r *Result) ForGene(gene string) []Hit {
	if r == nil {
		return nil
	}
	return r.hits[gene]
}

// HitCount returns the number of recorded hits across all genes.
func (r *Result) HitCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, hs := range r.hits {
		n += len(hs)
	}
	return n
}

// Unlisted returns, sorted, the genes that carry hits but are absent from
// the query list. Such hits never reach a report.
func (r *Result) Unlisted() []string {
	if r == nil {
		return nil
	}
	listed := make(map[string]struct{}, len(r.queries))
	for _, q := range r.queries {
		listed[q] = struct{}{}
	}
	var out []string
	for g := range r.hits {
		if _, ok := listed[g]; !ok {
			out = append(out, g)
		}
	}
	sort.Strings(out)
	return out
}
