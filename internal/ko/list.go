// internal/ko/list.go
package ko

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// List is an ordered set of KO records with id lookup.
type List struct {
	order []*KO
	byID  map[string]*KO
}

// NewList builds a List; later duplicates replace earlier ones in place.
func NewList(kos ...*KO) *List {
	l := &List{byID: make(map[string]*KO, len(kos))}
	for _, k := range kos {
		l.Add(k)
	}
	return l
}

// Add inserts or replaces k.
func (l *List) Add(k *KO) {
	if k == nil {
		return
	}
	if l.byID == nil {
		l.byID = map[string]*KO{}
	}
	if old, ok := l.byID[k.ID]; ok {
		for i := range l.order {
			if l.order[i] == old {
				l.order[i] = k
				break
			}
		}
	} else {
		l.order = append(l.order, k)
	}
	l.byID[k.ID] = k
}

// Get returns the KO with the given id.
func (l *List) Get(id string) (*KO, bool) {
	if l == nil {
		return nil, false
	}
	k, ok := l.byID[id]
	return k, ok
}

// All returns the records in file order.
func (l *List) All() []*KO {
	if l == nil {
		return nil
	}
	return append([]*KO(nil), l.order...)
}

// Len returns the number of records.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

const listColumns = 12

// LoadList reads a KOfam ko_list file.
func LoadList(path string) (*List, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return parseList(fh, path)
}

// ParseList reads ko_list rows from r. The "knum" header row and '#'
// comments are skipped; "-" marks an absent value.
func ParseList(r io.Reader) (*List, error) { return parseList(r, "ko_list") }

func parseList(r io.Reader, name string) (*List, error) {
	l := NewList()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if f[0] == "knum" {
			continue
		}
		if len(f) < listColumns {
			return nil, fmt.Errorf("%s:%d bad field count: want %d, got %d", name, ln, listColumns, len(f))
		}
		k, err := parseRow(f)
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", name, ln, err)
		}
		l.Add(k)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

func parseRow(f []string) (*KO, error) {
	k := &KO{
		ID:          f[0],
		ScoreType:   dash(f[2]),
		ProfileType: dash(f[3]),
		// definitions may themselves contain tabs
		Definition: strings.Join(f[11:], "\t"),
	}
	if s := dash(f[1]); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad threshold %q: %w", f[1], err)
		}
		k.Threshold = NewThreshold(v)
	}
	var err error
	if k.FMeasure, err = optFloat("F-measure", f[4]); err != nil {
		return nil, err
	}
	if k.Nseq, err = optInt("nseq", f[5]); err != nil {
		return nil, err
	}
	if k.NseqUsed, err = optInt("nseq_used", f[6]); err != nil {
		return nil, err
	}
	if k.Alen, err = optInt("alen", f[7]); err != nil {
		return nil, err
	}
	if k.Mlen, err = optInt("mlen", f[8]); err != nil {
		return nil, err
	}
	if k.EffNseq, err = optFloat("eff_nseq", f[9]); err != nil {
		return nil, err
	}
	if k.RelEntropy, err = optFloat("re/pos", f[10]); err != nil {
		return nil, err
	}
	return k, nil
}

func dash(s string) string {
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func optFloat(col, s string) (float64, error) {
	s = dash(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", col, s, err)
	}
	return v, nil
}

func optInt(col, s string) (int, error) {
	s = dash(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", col, s, err)
	}
	return v, nil
}
