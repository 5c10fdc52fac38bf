package report

import (
	"math"
	"strings"
)

// RenderText renders each page as plain text. Indentation follows the
// horizontal position of each line and larger vertical gaps become blank
// rows.
func RenderText(pages []Page, opts Options) []string {
	out := make([]string, 0, len(pages))
	for _, page := range pages {
		var b strings.Builder
		for i, ln := range page.Lines {
			if i > 0 {
				rows := int(math.Round((page.Lines[i-1].Y - ln.Y) / opts.LineHeight))
				for r := 1; r < rows; r++ {
					b.WriteByte('\n')
				}
				b.WriteByte('\n')
			}
			b.WriteString(strings.Repeat(" ", int((ln.X-indentHeading)/5)))
			b.WriteString(ln.Text)
		}
		out = append(out, b.String())
	}
	return out
}
