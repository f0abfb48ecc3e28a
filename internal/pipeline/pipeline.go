// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"kofamscan/internal/fasta"
	"kofamscan/internal/hmmout"
	"kofamscan/internal/ko"
	"kofamscan/internal/result"
)

// Config names the inputs of one run.
type Config struct {
	KOList    string   // KOfam ko_list path
	Tblout    []string // hmmsearch --tblout paths, read in order
	Queries   string   // query FASTA; "" derives the query list from the tables
	MaxEValue float64  // <= 0 disables the E-value cutoff
}

// Summary describes what a load produced.
type Summary struct {
	KOs      int
	Queries  int
	Hits     int
	Rows     int
	Filtered int

	UnknownKOs []string // profiles missing from the ko_list
	Unlisted   []string // genes with hits that are not in the query FASTA
}

// Load reads every input named by cfg.
func Load(ctx context.Context, cfg Config) (*result.Result, Summary, error) {
	var sum Summary

	kos, err := ko.LoadList(cfg.KOList)
	if err != nil {
		return nil, sum, fmt.Errorf("load ko_list: %w", err)
	}
	sum.KOs = kos.Len()

	res := result.New()
	if cfg.Queries != "" {
		ids, err := fasta.ReadIDs(ctx, cfg.Queries)
		if err != nil {
			return nil, sum, fmt.Errorf("load queries: %w", err)
		}
		res = result.New(ids...)
	}

	c := hmmout.NewCollector(kos, res)
	c.AddQueries = cfg.Queries == ""
	c.MaxEValue = cfg.MaxEValue
	if err := c.LoadFiles(ctx, cfg.Tblout); err != nil {
		return nil, sum, fmt.Errorf("load hmmsearch table: %w", err)
	}

	st := c.Stats()
	sum.Queries = len(res.QueryList())
	sum.Hits = st.Hits
	sum.Rows = st.Rows
	sum.Filtered = st.Filtered
	sum.UnknownKOs = st.UnknownKOs
	if cfg.Queries != "" {
		sum.Unlisted = res.Unlisted()
	}
	return res, sum, nil
}
