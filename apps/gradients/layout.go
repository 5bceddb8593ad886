// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/layout.go
// Summary: List scrolling and pager navigation state.

package gradients

import "fmt"

// Layout selects how cards are arranged.
type Layout int

const (
	// LayoutList stacks all cards in a scrollable column.
	LayoutList Layout = iota
	// LayoutPager shows one card per page.
	LayoutPager
)

func (l Layout) String() string {
	if l == LayoutPager {
		return "pager"
	}
	return "list"
}

// ParseLayout accepts "list" or "pager".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "list", "":
		return LayoutList, nil
	case "pager":
		return LayoutPager, nil
	}
	return LayoutList, fmt.Errorf("gradients: unknown layout %q", s)
}

// scrollState tracks a vertical viewport over content rows.
type scrollState struct {
	offset   int
	content  int
	viewport int
}

func (s *scrollState) setSize(content, viewport int) {
	s.content, s.viewport = content, viewport
	s.clamp()
}

func (s *scrollState) scrollBy(delta int) {
	s.offset += delta
	s.clamp()
}

func (s *scrollState) scrollTo(offset int) {
	s.offset = offset
	s.clamp()
}

func (s *scrollState) maxOffset() int {
	if m := s.content - s.viewport; m > 0 {
		return m
	}
	return 0
}

func (s *scrollState) clamp() {
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s scrollState) canScrollUp() bool   { return s.offset > 0 }
func (s scrollState) canScrollDown() bool { return s.offset < s.maxOffset() }

// visible reports whether rows [top, top+height) intersect the viewport.
func (s scrollState) visible(top, height int) bool {
	return top < s.offset+s.viewport && top+height > s.offset
}

// pagerState is the current page of count pages.
type pagerState struct {
	page  int
	count int
}

// turn moves by delta pages, clamped to the first and last page. It reports
// whether the page changed.
func (p *pagerState) turn(delta int) bool {
	return p.jump(p.page + delta)
}

func (p *pagerState) jump(page int) bool {
	if page >= p.count {
		page = p.count - 1
	}
	if page < 0 {
		page = 0
	}
	changed := page != p.page
	p.page = page
	return changed
}
