package rfc2org

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
)

// tableLayout holds the rendered column geometry of one table.
type tableLayout struct {
	widths []int
	aligns []rune
}

// convertTable renders an org table: optional caption and name
// directives, a rule line, then the head, body, and foot row groups. A
// single alignment annotation row follows the first non-empty group, and
// a rule closes every group.
func (c *converter) convertTable(e *etree.Element, buf *strings.Builder) {
	if name := e.SelectElement("name"); name != nil {
		fmt.Fprintf(buf, "#+caption: %s\n", strings.TrimSpace(name.Text()))
	}
	writeAttrDirective(e, "anchor", "name", buf)

	groups := make([][]*etree.Element, 0, 3)
	var all []*etree.Element
	for _, tag := range []string{"thead", "tbody", "tfoot"} {
		var rows []*etree.Element
		if g := e.SelectElement(tag); g != nil {
			rows = g.ChildElements()
		}
		groups = append(groups, rows)
		all = append(all, rows...)
	}

	layout := tableLayoutFor(all)
	rule := layout.rule()

	buf.WriteString(rule)
	annotated := false
	for _, rows := range groups {
		if len(rows) == 0 {
			continue
		}
		for _, row := range rows {
			cells := row.ChildElements()
			n := len(layout.widths)
			if len(cells) < n {
				n = len(cells)
			}
			for i := 0; i < n; i++ {
				buf.WriteString(formatTableCell(strings.TrimSpace(cells[i].Text()), layout.aligns[i], layout.widths[i]))
			}
			buf.WriteString("|\n")
		}
		if !annotated {
			annotated = true
			for i, w := range layout.widths {
				buf.WriteString(formatTableCell("<"+string(layout.aligns[i])+">", layout.aligns[i], w))
			}
			buf.WriteString("|\n")
		}
		buf.WriteString(rule)
	}
}

// tableLayoutFor computes column geometry from every row of the table.
// The column count is the smallest cell count across the rows, so ragged
// extra cells are dropped. Each width is the longest trimmed cell text at
// that position plus a one-space margin per side; each alignment cookie
// is the first character of the first non-empty align attribute at that
// position, defaulting to left.
func tableLayoutFor(rows []*etree.Element) tableLayout {
	var widths []int
	var aligns []string
	for _, row := range rows {
		cells := row.ChildElements()
		if len(widths) == 0 {
			widths = make([]int, len(cells))
			aligns = make([]string, len(cells))
		} else if len(cells) < len(widths) {
			widths = widths[:len(cells)]
			aligns = aligns[:len(cells)]
		}
		for i := range widths {
			if n := utf8.RuneCountInString(strings.TrimSpace(cells[i].Text())); n > widths[i] {
				widths[i] = n
			}
			if aligns[i] == "" {
				aligns[i] = cells[i].SelectAttrValue("align", "")
			}
		}
	}

	layout := tableLayout{
		widths: make([]int, len(widths)),
		aligns: make([]rune, len(widths)),
	}
	for i, w := range widths {
		layout.widths[i] = w + 2
		layout.aligns[i] = 'l'
		if aligns[i] != "" {
			layout.aligns[i] = []rune(aligns[i])[0]
		}
	}
	return layout
}

// rule returns the horizontal separator line for the layout.
func (l tableLayout) rule() string {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range l.widths {
		if i > 0 {
			b.WriteString("+")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("|\n")
	return b.String()
}

// formatTableCell renders one cell with single-space margins, padded to
// width in runes: 'c' centers with the surplus space on the right, 'r'
// aligns right, and any other cookie aligns left. Content wider than the
// column is kept whole.
func formatTableCell(text string, align rune, width int) string {
	content := " " + text + " "
	pad := width - utf8.RuneCountInString(content)
	if pad < 0 {
		pad = 0
	}
	var left int
	switch align {
	case 'c':
		left = pad / 2
	case 'r':
		left = pad
	}
	return "|" + strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
}
