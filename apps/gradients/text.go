// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/text.go
// Summary: Width-aware caption wrapping and drawing.

package gradients

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelgrad/texel"
)

const ellipsis = "…"

// wrapText breaks s into at most maxLines lines of display width <= width.
// Text that does not fit is cut with an ellipsis on the last line.
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line, start := "", 0
	for i, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line == "" || runewidth.StringWidth(candidate) <= width {
			line = candidate
			continue
		}
		if len(lines) == maxLines-1 {
			rest := strings.Join(words[start:], " ")
			return append(lines, runewidth.Truncate(rest, width, ellipsis))
		}
		lines = append(lines, runewidth.Truncate(line, width, ellipsis))
		line, start = word, i
	}
	if line != "" {
		lines = append(lines, runewidth.Truncate(line, width, ellipsis))
	}
	return lines
}

// drawText writes s at (x, y), truncated to width cells. Wide runes take two cells.
func drawText(buf [][]texel.Cell, x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, ellipsis)
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		texel.SetCell(buf, col, y, texel.Cell{Ch: r, Style: style})
		if w == 2 {
			texel.SetCell(buf, col+1, y, texel.Cell{Ch: ' ', Style: style})
		}
		col += w
	}
}
