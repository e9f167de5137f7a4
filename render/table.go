package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	sent "github.com/revelaction/conllu/sentence"
)

var tableHeader = []string{"ID", "FORM", "LEMMA", "UPOS", "XPOS", "FEATS", "HEAD", "DEPREL", "DEPS", "MISC"}

// Table writes the tokens of s as aligned columns, one token per row. Wide
// runes are measured by display width.
func (r *Renderer) Table(s sent.Sentence) {
	rows := [][]string{tableHeader}
	for _, t := range s.Tokens() {
		rows = append(rows, strings.Split(Token(t), "\t"))
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for n, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}

		line := strings.TrimRight(b.String(), " ")
		if n == 0 && r.HasColor {
			line = Teal + line + Off
		}
		fmt.Fprintln(r.Out, line)
	}
}
