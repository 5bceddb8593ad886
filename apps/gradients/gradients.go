// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/gradients.go
// Summary: Showcase screen hosting the gradient effect cards in a list or pager.
// Usage: devshell builds it via New; Run only paces frames, Render paints.
// Notes: Only cards on screen are attached to the effect manager; the rest keep no time state.

package gradients

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrad/internal/effects"
	"github.com/framegrace/texelgrad/internal/theming"
	"github.com/framegrace/texelgrad/paint"
	"github.com/framegrace/texelgrad/texel"
)

// Options configures the screen.
type Options struct {
	Layout Layout
	FPS    int
	// Supersample is the raster supersampling factor per axis.
	Supersample int
	// LogicalWidth is the side of the square surface effects paint on.
	LogicalWidth float64
	ClipCircle   bool
	// BoxCells is the preferred effect box width in cells.
	BoxCells   int
	Background paint.Color
	Theme      theming.Theme
	// Now returns the frame time; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the list layout at 30 fps.
func DefaultOptions() Options {
	return Options{
		Layout:       LayoutList,
		FPS:          30,
		Supersample:  2,
		LogicalWidth: 300,
		ClipCircle:   true,
		BoxCells:     24,
		Background:   paint.Black,
		Theme:        theming.Default(),
	}
}

func (o Options) tcellBackground() tcell.Color {
	r, g, b, _ := o.Background.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (o *Options) normalize() {
	def := DefaultOptions()
	if o.FPS <= 0 {
		o.FPS = def.FPS
	}
	if o.Supersample < 1 {
		o.Supersample = 1
	}
	if o.LogicalWidth <= 0 {
		o.LogicalWidth = def.LogicalWidth
	}
	if o.BoxCells < 2 {
		o.BoxCells = def.BoxCells
	}
	if o.Theme == (theming.Theme{}) {
		o.Theme = def.Theme
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type gradientsApp struct {
	mu          sync.Mutex
	opts        Options
	cards       []*card
	manager     *effects.Manager
	width       int
	height      int
	buf         [][]texel.Cell
	scroll      scrollState
	pager       pagerState
	hint        *scrollHint
	geoms       []cardGeometry
	tops        []int
	textWidth   int
	stop        chan struct{}
	stopOnce    sync.Once
	refreshChan chan<- bool
}

// New creates the screen with one card per spec, in order.
func New(opts Options, specs []effects.EffectSpec) (texel.App, error) {
	opts.normalize()
	if len(specs) == 0 {
		specs = effects.DefaultSpecs()
	}
	cards := make([]*card, 0, len(specs))
	for _, spec := range specs {
		eff, err := effects.Create(spec)
		if err != nil {
			return nil, fmt.Errorf("gradients: %w", err)
		}
		cards = append(cards, &card{effect: eff})
	}
	return &gradientsApp{
		opts:    opts,
		cards:   cards,
		manager: effects.NewManager(),
		pager:   pagerState{count: len(cards)},
		hint:    newScrollHint(),
		stop:    make(chan struct{}),
	}, nil
}

func (a *gradientsApp) GetTitle() string { return "Gradients" }

func (a *gradientsApp) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

// Run paces frames at the configured rate until Stop.
func (a *gradientsApp) Run() error {
	interval := time.Second / time.Duration(a.opts.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log.Printf("Gradients: running %s layout at %d fps", a.opts.Layout, a.opts.FPS)

	for {
		select {
		case <-ticker.C:
			if a.refreshChan != nil {
				select {
				case a.refreshChan <- true:
				default:
				}
			}
		case <-a.stop:
			return nil
		}
	}
}

// Stop ends Run and releases every effect's time state.
func (a *gradientsApp) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
	a.mu.Lock()
	a.manager.DetachAll()
	a.mu.Unlock()
}

func (a *gradientsApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
	a.relayout()
}

func (a *gradientsApp) HandleKey(ev *tcell.EventKey) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape:
		a.stopOnce.Do(func() { close(a.stop) })
		return
	case tcell.KeyUp:
		a.move(-1, false)
	case tcell.KeyDown:
		a.move(1, false)
	case tcell.KeyPgUp:
		a.move(-1, true)
	case tcell.KeyPgDn:
		a.move(1, true)
	case tcell.KeyHome:
		a.jumpEnd(false)
	case tcell.KeyEnd:
		a.jumpEnd(true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.stopOnce.Do(func() { close(a.stop) })
		case 'j':
			a.move(1, false)
		case 'k':
			a.move(-1, false)
		}
	}
}

// move scrolls by one row or a page in list layout, or turns one page.
func (a *gradientsApp) move(dir int, page bool) {
	if a.opts.Layout == LayoutPager {
		if a.pager.turn(dir) {
			a.hint.dismiss()
		}
		return
	}
	step := dir
	if page {
		step = dir * max(1, a.height-1)
	}
	a.scroll.scrollBy(step)
}

func (a *gradientsApp) jumpEnd(last bool) {
	if a.opts.Layout == LayoutPager {
		target := 0
		if last {
			target = len(a.cards) - 1
		}
		if a.pager.jump(target) {
			a.hint.dismiss()
		}
		return
	}
	if last {
		a.scroll.scrollTo(a.scroll.maxOffset())
	} else {
		a.scroll.scrollTo(0)
	}
}

// relayout recomputes card geometry for the current size.
func (a *gradientsApp) relayout() {
	a.geoms = a.geoms[:0]
	a.tops = a.tops[:0]
	if a.width <= 0 || a.height <= 0 {
		return
	}
	switch a.opts.Layout {
	case LayoutPager:
		// Margin, text, and the indicator column on the right.
		a.textWidth = max(1, a.width-6)
		for _, c := range a.cards {
			lines := len(c.geometry(a.textWidth, 1).subtitle)
			rows := min(a.opts.BoxCells/2, a.height-lines-3, a.textWidth/2)
			g := c.geometry(a.textWidth, rows)
			a.geoms = append(a.geoms, g)
			a.tops = append(a.tops, max(0, (a.height-g.rows())/2))
		}
	default:
		a.textWidth = max(1, a.width-4)
		rows := min(a.opts.BoxCells/2, a.textWidth/2)
		y := 1
		for _, c := range a.cards {
			g := c.geometry(a.textWidth, rows)
			a.geoms = append(a.geoms, g)
			a.tops = append(a.tops, y)
			y += g.rows() + 1
		}
		a.scroll.setSize(y, a.height)
	}
}

// visibleCards returns the indexes of cards that intersect the screen.
func (a *gradientsApp) visibleCards() []int {
	if len(a.geoms) != len(a.cards) {
		return nil
	}
	if a.opts.Layout == LayoutPager {
		if len(a.cards) == 0 {
			return nil
		}
		return []int{a.pager.page}
	}
	var out []int
	for i, g := range a.geoms {
		if a.scroll.visible(a.tops[i], g.rows()) {
			out = append(out, i)
		}
	}
	return out
}

// syncAttachment attaches cards that came on screen and detaches the rest.
func (a *gradientsApp) syncAttachment(visible []int, now time.Time) {
	on := make(map[int]bool, len(visible))
	for _, i := range visible {
		on[i] = true
	}
	for i, c := range a.cards {
		id := c.effect.ID()
		if on[i] {
			a.manager.Attach(c.effect, now)
		} else if a.manager.Attached(id) {
			a.manager.Detach(id)
		}
	}
}

func (a *gradientsApp) ensureBuffer(style tcell.Style) {
	if len(a.buf) != a.height || (a.height > 0 && len(a.buf[0]) != a.width) {
		a.buf = texel.NewBuffer(a.width, a.height, style)
		return
	}
	for y := range a.buf {
		for x := range a.buf[y] {
			a.buf[y][x] = texel.Cell{Ch: ' ', Style: style}
		}
	}
}

func (a *gradientsApp) Render() [][]texel.Cell {
	now := a.opts.Now()
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.width <= 0 || a.height <= 0 {
		return [][]texel.Cell{}
	}
	if len(a.geoms) != len(a.cards) {
		a.relayout()
	}
	base := tcell.StyleDefault.Background(a.opts.tcellBackground())
	a.ensureBuffer(base)

	visible := a.visibleCards()
	a.syncAttachment(visible, now)
	a.manager.Update(now)

	for _, i := range visible {
		top := a.tops[i]
		if a.opts.Layout == LayoutList {
			top -= a.scroll.offset
		}
		a.cards[i].draw(a.buf, 2, top, a.textWidth, a.geoms[i], a.opts)
	}

	if a.opts.Layout == LayoutPager {
		a.drawPageIndicator(base)
		a.drawHint(base, now)
	} else {
		a.drawScrollIndicators(base)
	}
	return a.buf
}

func (a *gradientsApp) drawScrollIndicators(base tcell.Style) {
	x := a.width - 1
	style := base.Foreground(a.opts.Theme.Indicator)
	if a.scroll.canScrollUp() {
		texel.SetCell(a.buf, x, 0, texel.Cell{Ch: '▲', Style: style})
	}
	if a.scroll.canScrollDown() {
		texel.SetCell(a.buf, x, a.height-1, texel.Cell{Ch: '▼', Style: style})
	}
}

func (a *gradientsApp) drawPageIndicator(base tcell.Style) {
	x := a.width - 2
	y0 := (a.height - len(a.cards)) / 2
	for i := range a.cards {
		ch, style := '○', base.Foreground(a.opts.Theme.Indicator)
		if i == a.pager.page {
			ch, style = '●', base.Foreground(a.opts.Theme.Active)
		}
		texel.SetCell(a.buf, x, y0+i, texel.Cell{Ch: ch, Style: style})
	}
}

func (a *gradientsApp) drawHint(base tcell.Style, now time.Time) {
	if a.pager.page != 0 {
		return
	}
	bounce, ok := a.hint.offset(now)
	if !ok {
		return
	}
	texel.SetCell(a.buf, a.width/2, a.height-2+bounce, texel.Cell{
		Ch:    hintGlyph,
		Style: base.Foreground(a.opts.Theme.Hint),
	})
}
