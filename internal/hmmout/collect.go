// internal/hmmout/collect.go
package hmmout

import (
	"context"

	"kofamscan/internal/ko"
	"kofamscan/internal/result"
)

// Collector turns tblout rows into hits on a Result.
type Collector struct {
	kos *ko.List
	res *result.Result

	// MaxEValue drops hits whose E-value exceeds it; <= 0 keeps everything.
	MaxEValue float64
	// AddQueries appends each new target to the query list as it is seen.
	AddQueries bool

	seen    map[string]struct{}
	unknown map[string]*ko.KO
	stats   Stats
}

// Stats summarizes a collection run.
type Stats struct {
	Rows       int
	Hits       int
	Filtered   int
	UnknownKOs []string // profile names absent from the ko_list, first-seen order
}

// NewCollector adds hits against kos to res.
func NewCollector(kos *ko.List, res *result.Result) *Collector {
	return &Collector{
		kos:     kos,
		res:     res,
		seen:    map[string]struct{}{},
		unknown: map[string]*ko.KO{},
	}
}

// Add records one row. The KO's score type picks the full-sequence or
// best-domain score and E-value.
func (c *Collector) Add(row Row) error {
	c.stats.Rows++
	k := c.lookup(row.Query)

	score, evalue := row.FullScore, row.FullEValue
	if k.UsesDomainScore() {
		score, evalue = row.DomScore, row.DomEValue
	}
	if c.MaxEValue > 0 && evalue > c.MaxEValue {
		c.stats.Filtered++
		return nil
	}
	if c.AddQueries {
		if _, ok := c.seen[row.Target]; !ok {
			c.seen[row.Target] = struct{}{}
			c.res.AddQuery(row.Target)
		}
	}
	c.res.Add(result.Hit{GeneName: row.Target, KO: k, Score: score, EValue: evalue})
	c.stats.Hits++
	return nil
}

// lookup returns the listed KO, or a threshold-less stand-in for profiles
// the ko_list does not describe.
func (c *Collector) lookup(id string) *ko.KO {
	if k, ok := c.kos.Get(id); ok {
		return k
	}
	if k, ok := c.unknown[id]; ok {
		return k
	}
	k := &ko.KO{ID: id}
	c.unknown[id] = k
	c.stats.UnknownKOs = append(c.stats.UnknownKOs, id)
	return k
}

// Stats returns the counters so far.
func (c *Collector) Stats() Stats {
	s := c.stats
	s.UnknownKOs = append([]string(nil), c.stats.UnknownKOs...)
	return s
}

// LoadFiles parses every path in order into c.
func (c *Collector) LoadFiles(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if err := ParseFile(ctx, p, c.Add); err != nil {
			return err
		}
	}
	return nil
}
