// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_tcell.go
// Summary: Thin tcell.Screen wrapper that presents cell buffers.
// Usage: The devshell runner owns one driver per session.

package texel

import "github.com/gdamore/tcell/v2"

// TcellScreenDriver adapts a tcell.Screen for the runner.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.HideCursor()
	d.screen.Clear()
	return nil
}

func (d *TcellScreenDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellScreenDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

// Wake posts an interrupt so PollEvent returns and the runner redraws.
func (d *TcellScreenDriver) Wake() {
	_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Present copies buffer to the screen and shows it. Cells outside the
// buffer are cleared.
func (d *TcellScreenDriver) Present(buffer [][]Cell) {
	d.screen.Clear()
	for y, row := range buffer {
		for x, cell := range row {
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			d.screen.SetContent(x, y, ch, nil, cell.Style)
		}
	}
	d.screen.Show()
}

// Underlying exposes the wrapped tcell.Screen for tests.
func (d *TcellScreenDriver) Underlying() tcell.Screen {
	return d.screen
}
