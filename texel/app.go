// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Cell buffer and the App contract hosted by the terminal runner.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is a single terminal cell.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is a full-screen terminal application. Run blocks until Stop is called;
// the runner calls Render, Resize and HandleKey from its event goroutine.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
}

// NewBuffer allocates a cols×rows buffer filled with blanks in style.
func NewBuffer(cols, rows int, style tcell.Style) [][]Cell {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	buf := make([][]Cell, rows)
	for y := range buf {
		row := make([]Cell, cols)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: style}
		}
		buf[y] = row
	}
	return buf
}

// SetCell writes c at (x, y) if it lies inside buf.
func SetCell(buf [][]Cell, x, y int, c Cell) {
	if y < 0 || y >= len(buf) || x < 0 || x >= len(buf[y]) {
		return
	}
	buf[y][x] = c
}
