package hitdetail

import (
	"strconv"
	"strings"

	"kofamscan/internal/result"
)

const placeholder = "-"

// hitLine renders one hit without a trailing newline.
func (l layout) hitLine(h result.Hit) string {
	mark := " "
	if h.AboveThreshold() {
		mark = "*"
	}
	var b strings.Builder
	b.WriteString(mark)
	for _, c := range l.cols {
		b.WriteByte(' ')
		switch c {
		case colGeneName:
			b.WriteString(l.geneName(h.GeneName))
		case colKO:
			b.WriteString(l.cell(c, h.KOID()))
		case colThreshold:
			b.WriteString(l.cell(c, thresholdText(h)))
		case colScore:
			b.WriteString(l.cell(c, strconv.FormatFloat(h.Score, 'f', 1, 64)))
		case colEValue:
			b.WriteString(l.cell(c, strconv.FormatFloat(h.EValue, 'g', 2, 64)))
		case colKODefinition:
			b.WriteString(h.Definition())
		}
	}
	return b.String()
}

func thresholdText(h result.Hit) string {
	if h.KO == nil {
		return placeholder
	}
	v, ok := h.KO.Threshold.Value()
	if !ok {
		return placeholder
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// emptyLine renders the placeholder row for a gene without hits.
func (l layout) emptyLine(gene string) string {
	var b strings.Builder
	b.WriteString(" ")
	for _, c := range l.cols {
		b.WriteByte(' ')
		switch c {
		case colGeneName:
			b.WriteString(l.geneName(gene))
		case colKODefinition:
			b.WriteString(placeholder)
		default:
			b.WriteString(l.cell(c, placeholder))
		}
	}
	return b.String()
}
