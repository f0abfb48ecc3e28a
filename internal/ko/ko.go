// internal/ko/ko.go
package ko

import "strconv"

// Score types a KOfam profile can be calibrated against.
const (
	ScoreFull   = "full"
	ScoreDomain = "domain"
)

// Threshold is a calibrated profile threshold that may be absent.
// The zero value is absent.
type Threshold struct {
	value float64
	ok    bool
}

// NewThreshold returns a present threshold.
func NewThreshold(v float64) Threshold { return Threshold{value: v, ok: true} }

// NoThreshold returns an absent threshold.
func NoThreshold() Threshold { return Threshold{} }

// Value returns the threshold and whether it is present.
func (t Threshold) Value() (float64, bool) { return t.value, t.ok }

// Defined reports whether the threshold is present.
func (t Threshold) Defined() bool { return t.ok }

// Admits reports whether score meets the threshold.
// An absent threshold admits nothing.
func (t Threshold) Admits(score float64) bool {
	if !t.ok {
		return false
	}
	return score >= t.value
}

func (t Threshold) String() string {
	if !t.ok {
		return "-"
	}
	return strconv.FormatFloat(t.value, 'f', 2, 64)
}

// KO is one KEGG Orthology profile record as listed in a KOfam ko_list.
type KO struct {
	ID          string
	Threshold   Threshold
	ScoreType   string // "full" | "domain" | "" when uncalibrated
	ProfileType string // "all" | "trim" | ""
	FMeasure    float64
	Nseq        int
	NseqUsed    int
	Alen        int
	Mlen        int
	EffNseq     float64
	RelEntropy  float64 // relative entropy per position
	Definition  string
}

// UsesDomainScore reports whether hits against this profile are scored by
// their best single domain rather than the full sequence.
func (k *KO) UsesDomainScore() bool {
	return k != nil && k.ScoreType == ScoreDomain
}
