package hitdetail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kofamscan/internal/ko"
	"kofamscan/internal/result"
)

func TestHeader_Stable(t *testing.T) {
	const want = "# gene name           KO     score   E-value KO definition\n" +
		"#-------------------- ------ ------ --------- ---------------------\n"
	assert.Equal(t, want, New(DefaultOptions).Header())
}

func TestColumnWidths_Stable(t *testing.T) {
	assert.Equal(t, 19, GeneNameWidth)
	assert.Equal(t, 6, KOWidth)
	assert.Equal(t, 6, ScoreWidth)
	assert.Equal(t, 9, EValueWidth)
	assert.Equal(t, 21, KODefinitionWidth)
}

func TestDelimiter_MatchesColumnWidths(t *testing.T) {
	for _, opts := range []Options{DefaultOptions, {ShowThreshold: true}} {
		lines := strings.Split(New(opts).Header(), "\n")
		runs := strings.Fields(strings.TrimPrefix(lines[1], "#-"))
		l := newLayout(opts)
		assert.Len(t, runs, len(l.cols))
		for i, c := range l.cols {
			assert.Len(t, runs[i], l.width(c), "column %d", i)
		}
	}
}

func TestRow_Fields(t *testing.T) {
	f := New(DefaultOptions)
	k := &ko.KO{ID: "K00002", Threshold: ko.NewThreshold(150), Definition: "def"}

	cases := []struct {
		name string
		hit  result.Hit
		want string
	}{
		{"marked", result.Hit{GeneName: "gene2", KO: k, Score: 180, EValue: 5e-05},
			"* gene2               K00002  180.0     5e-05 def"},
		{"rounded score", result.Hit{GeneName: "g", KO: k, Score: 12.34, EValue: 0.5},
			"  g                   K00002   12.3       0.5 def"},
		{"large e-value", result.Hit{GeneName: "g", KO: k, Score: 1, EValue: 1234},
			"  g                   K00002    1.0   1.2e+03 def"},
		{"exact threshold", result.Hit{GeneName: "g", KO: k, Score: 150, EValue: 1},
			"* g                   K00002  150.0         1 def"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, f.Row(c.hit))
		})
	}
}

func TestRow_TruncatesToColumnWidth(t *testing.T) {
	name := "abcdefghijklmnopqrstuvwxyz"
	row := New(DefaultOptions).Row(result.Hit{GeneName: name, Score: 1, EValue: 1})
	assert.Equal(t, name[:GeneNameWidth]+" ", row[2:2+GeneNameWidth+1])

	// multi-byte names are cut by character, not byte
	uni := strings.Repeat("é", 25)
	row = New(DefaultOptions).Row(result.Hit{GeneName: uni, Score: 1, EValue: 1})
	assert.True(t, strings.HasPrefix(row, "  "+strings.Repeat("é", GeneNameWidth)+" "))
}

func TestEmptyRow(t *testing.T) {
	assert.Equal(t, "  gene3               -           -         - -", New(DefaultOptions).EmptyRow("gene3"))
	assert.Equal(t, "  gene3               -            -      -         - -",
		New(Options{ShowThreshold: true}).EmptyRow("gene3"))

	long := strings.Repeat("n", 40)
	assert.Equal(t, "  "+strings.Repeat("n", GeneNameWidth)+" -", New(DefaultOptions).EmptyRow(long)[:2+GeneNameWidth+2])
}

func TestWidenFor(t *testing.T) {
	l := newLayout(Options{KeepLongNames: true}).widenFor([]string{"short", strings.Repeat("q", 25)})
	assert.Equal(t, 25, l.width(colGeneName))

	l = newLayout(DefaultOptions).widenFor([]string{strings.Repeat("q", 25)})
	assert.Equal(t, GeneNameWidth, l.width(colGeneName))
}
