// internal/hitdetail/layout.go
package hitdetail

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column widths of the hit-detail table. Text columns are left-aligned and
// padded to at least their width; numeric columns are right-aligned.
const (
	GeneNameWidth     = 19
	KOWidth           = 6
	ThresholdWidth    = 7
	ScoreWidth        = 6
	EValueWidth       = 9
	KODefinitionWidth = 21
)

type column int

const (
	colGeneName column = iota
	colKO
	colThreshold
	colScore
	colEValue
	colKODefinition
)

type columnSpec struct {
	title string
	width int
	right bool
}

var columnSpecs = [...]columnSpec{
	colGeneName:     {"gene name", GeneNameWidth, false},
	colKO:           {"KO", KOWidth, false},
	colThreshold:    {"thrshld", ThresholdWidth, true},
	colScore:        {"score", ScoreWidth, true},
	colEValue:       {"E-value", EValueWidth, true},
	colKODefinition: {"KO definition", KODefinitionWidth, false},
}

var (
	compactColumns   = []column{colGeneName, colKO, colScore, colEValue, colKODefinition}
	thresholdColumns = []column{colGeneName, colKO, colThreshold, colScore, colEValue, colKODefinition}
)

// layout is the column grid for one report. Header, hit rows and
// placeholder rows all render through it.
type layout struct {
	cols      []column
	geneWidth int
	truncate  bool
}

func newLayout(opts Options) layout {
	l := layout{cols: compactColumns, geneWidth: GeneNameWidth, truncate: true}
	if opts.ShowThreshold {
		l.cols = thresholdColumns
	}
	if opts.KeepLongNames {
		l.truncate = false
	}
	return l
}

// widenFor grows the gene-name column to fit the longest query name.
// It only applies when names are not truncated.
func (l layout) widenFor(queries []string) layout {
	if l.truncate {
		return l
	}
	for _, q := range queries {
		if n := utf8.RuneCountInString(q); n > l.geneWidth {
			l.geneWidth = n
		}
	}
	return l
}

func (l layout) width(c column) int {
	if c == colGeneName {
		return l.geneWidth
	}
	return columnSpecs[c].width
}

// cell renders s into column c, padding to width.
func (l layout) cell(c column, s string) string {
	w := l.width(c)
	if columnSpecs[c].right {
		return fmt.Sprintf("%*s", w, s)
	}
	return fmt.Sprintf("%-*s", w, s)
}

func (l layout) geneName(name string) string {
	if l.truncate {
		name = truncate(name, l.geneWidth)
	}
	return l.cell(colGeneName, name)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func (l layout) titleLine() string {
	var b strings.Builder
	b.WriteString("# ")
	for i, c := range l.cols {
		// The KO and score titles abut in the compact header. Downstream
		// parsers of the report key on that exact line.
		if i > 0 && !(c == colScore && l.cols[i-1] == colKO) {
			b.WriteByte(' ')
		}
		if c == colKODefinition {
			b.WriteString(columnSpecs[c].title)
			continue
		}
		b.WriteString(l.cell(c, columnSpecs[c].title))
	}
	return b.String()
}

func (l layout) delimiterLine() string {
	runs := make([]string, len(l.cols))
	for i, c := range l.cols {
		runs[i] = strings.Repeat("-", l.width(c))
	}
	return "#-" + strings.Join(runs, " ")
}
