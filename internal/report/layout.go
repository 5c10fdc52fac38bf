// Package report renders an analysis result as a paginated document.
//
// Layout plans every page as a list of positioned lines; the PDF and text
// drawers only paint what Layout decided. Coordinates are in points with the
// origin at the bottom-left corner of the page.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/watchfire-io/logaudit/internal/models"
)

// Font selects one of the standard PDF fonts.
type Font struct {
	Family string
	Style  string // "" or "B"
	Size   float64
}

var (
	fontTitle   = Font{Family: "Helvetica", Style: "B", Size: 16}
	fontTotal   = Font{Family: "Helvetica", Size: 12}
	fontHeading = Font{Family: "Helvetica", Style: "B", Size: 12}
	fontBody    = Font{Family: "Helvetica", Size: 11}
)

// Line is a single run of text placed on a page.
type Line struct {
	X, Y float64
	Font Font
	Text string
}

// Page holds the lines of one page, top to bottom.
type Page struct {
	Lines []Line
}

// Options controls page geometry.
type Options struct {
	Title        string
	Width        float64
	Height       float64
	TopMargin    float64 // distance from the top edge to the first baseline
	BottomMargin float64 // no baseline is placed below this
	LineHeight   float64
	MaxLineChars int
}

// DefaultOptions returns US Letter geometry.
func DefaultOptions() Options {
	return Options{
		Title:        "PROJECT LOG ANALYSIS REPORT",
		Width:        612,
		Height:       792,
		TopMargin:    50,
		BottomMargin: 60,
		LineHeight:   16,
		MaxLineChars: 100,
	}
}

const (
	indentHeading = 50
	indentSummary = 60
	indentItem    = 70

	headerGap  = 30 // after the title and the total line
	sectionGap = 10 // extra space after each section
)

type planner struct {
	opts  Options
	pages []Page
	y     float64
}

func (p *planner) top() float64 {
	return p.opts.Height - p.opts.TopMargin
}

// add places text at the cursor, starting a new page first if the cursor
// has dropped below the bottom margin, then moves the cursor down by advance.
func (p *planner) add(x float64, f Font, text string, advance float64) {
	if p.y < p.opts.BottomMargin {
		p.pages = append(p.pages, Page{})
		p.y = p.top()
	}
	last := &p.pages[len(p.pages)-1]
	last.Lines = append(last.Lines, Line{X: x, Y: p.y, Font: f, Text: text})
	p.y -= advance
}

// Layout plans the pages of the report for res.
func Layout(res models.AnalysisResult, opts Options) []Page {
	p := &planner{opts: opts, pages: []Page{{}}}
	p.y = p.top()

	p.add(indentHeading, fontTitle, opts.Title, headerGap)
	p.add(indentHeading, fontTotal, fmt.Sprintf("Total entries analyzed: %d", res.TotalEntries), headerGap)

	for i, name := range models.RuleNames {
		s := res.Rule(name)
		title := s.Title
		if title == "" {
			title = strings.ToUpper(strings.ReplaceAll(string(name), "_", " "))
		}
		p.add(indentHeading, fontHeading, fmt.Sprintf("%d. %s:", i+1, title), opts.LineHeight)
		p.add(indentSummary, fontBody, fmt.Sprintf("Violations: %d (%.1f%%)", s.Count, s.Percent), opts.LineHeight)
		for _, v := range s.Violations {
			p.add(indentItem, fontBody, truncate(ViolationLine(v), opts.MaxLineChars), opts.LineHeight)
		}
		p.y -= sectionGap
	}
	return p.pages
}

// ViolationLine formats a violation as "- <date>: [<category>] <details> (<hours>)".
func ViolationLine(v models.ViolationRecord) string {
	return fmt.Sprintf("- %s: [%s] %s (%s)", v.Date, v.Category, v.Details, FormatHours(v.Hours))
}

// FormatHours prints hours with at least one fractional digit: 2 -> "2.0".
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
