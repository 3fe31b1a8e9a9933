package ui

import (
	"fmt"
	"strings"

	"colorfy"
)

// Align controls cell alignment within a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column defines a table column.
type Column struct {
	Header   string
	Align    Align
	MinWidth int
}

// Box drawing characters for table borders.
type boxChars struct {
	tl, tr, bl, br  string
	h, v            string
	t, ml, m, mr, b string
}

var unicodeBox = boxChars{
	tl: "┌", tr: "┐", bl: "└", br: "┘",
	h: "─", v: "│",
	t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
}

// RenderTable renders rows under the given columns with unicode borders.
// Cell widths are measured on visible characters, so cells may contain
// escape sequences (swatches, styled text).
func RenderTable(columns []Column, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		w := colorfy.VisibleWidth(col.Header)
		for _, row := range rows {
			if i < len(row) {
				if cw := colorfy.VisibleWidth(row[i]); cw > w {
					w = cw
				}
			}
		}
		if w < col.MinWidth {
			w = col.MinWidth
		}
		widths[i] = w + 2
	}

	hLine := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(unicodeBox.h, w)
		}
		return left + strings.Join(parts, mid) + right
	}

	padCell := func(text string, width int, align Align) string {
		pad := width - colorfy.VisibleWidth(text)
		if pad <= 0 {
			return text
		}
		switch align {
		case AlignRight:
			return spaces(pad) + text
		case AlignCenter:
			left := pad / 2
			return spaces(left) + text + spaces(pad-left)
		default:
			return text + spaces(pad)
		}
	}

	renderRow := func(values []string) string {
		parts := make([]string, len(columns))
		for i, col := range columns {
			val := ""
			if i < len(values) {
				val = values[i]
			}
			parts[i] = " " + padCell(val, widths[i]-2, col.Align) + " "
		}
		return unicodeBox.v + strings.Join(parts, unicodeBox.v) + unicodeBox.v
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = Heading("%s", col.Header)
	}

	lines := []string{hLine(unicodeBox.tl, unicodeBox.t, unicodeBox.tr)}
	lines = append(lines, renderRow(headers))
	lines = append(lines, hLine(unicodeBox.ml, unicodeBox.m, unicodeBox.mr))
	for _, row := range rows {
		lines = append(lines, renderRow(row))
	}
	lines = append(lines, hLine(unicodeBox.bl, unicodeBox.b, unicodeBox.br))

	return strings.Join(lines, "\n") + "\n"
}

// RenderKeyValues renders an aligned key-value listing.
func RenderKeyValues(pairs [][2]string) string {
	maxKey := 0
	for _, kv := range pairs {
		if len(kv[0]) > maxKey {
			maxKey = len(kv[0])
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			Muted("%s", padRight(kv[0]+":", maxKey+1)),
			Subtle("%s", kv[1])))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if pad := width - colorfy.VisibleWidth(s); pad > 0 {
		return s + spaces(pad)
	}
	return s
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
