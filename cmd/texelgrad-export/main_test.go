// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelgrad/internal/effects"
	"github.com/framegrace/texelgrad/paint"
)

func TestParseSize(t *testing.T) {
	got, err := parseSize("320x180")
	if err != nil {
		t.Fatalf("parseSize: %v", err)
	}
	if diff := cmp.Diff(paint.Size{W: 320, H: 180}, got); diff != "" {
		t.Fatalf("size mismatch (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"", "300", "0x10", "ax2", "10x-1"} {
		if _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) should fail", bad)
		}
	}
}

func TestFrameTimesFollowFPS(t *testing.T) {
	start := time.Unix(100, 0)
	got := frameTimes(start, 250*time.Millisecond, 3, 4)
	want := []time.Time{
		start.Add(250 * time.Millisecond),
		start.Add(500 * time.Millisecond),
		start.Add(750 * time.Millisecond),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frame times mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"-frames", "0"},
		{"-fps", "0"},
		{"-scale", "0"},
		{"-at", "-1s"},
		{"-size", "wide"},
	}
	for _, args := range cases {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v) should fail", args)
		}
	}
}

func TestExportWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseFlags([]string{
		"-effect", effects.RotatingID,
		"-size", "40x20",
		"-scale", "0.5",
		"-frames", "2",
		"-supersample", "1",
		"-out", dir,
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	paths, err := export(opts)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := []string{
		filepath.Join(dir, "rotating-linear-0000.png"),
		filepath.Join(dir, "rotating-linear-0001.png"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	img, err := imaging.Open(paths[0])
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("frame bounds = %v, want 20x10", b)
	}
}

func TestExportUnknownEffect(t *testing.T) {
	opts, err := parseFlags([]string{"-effect", "nope", "-out", t.TempDir()})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if _, err := export(opts); err == nil {
		t.Fatal("expected error for unknown effect")
	}
}

func TestExportCarouselStartPalette(t *testing.T) {
	opts, err := parseFlags([]string{"-palette", "3", "-size", "20x20", "-supersample", "1", "-out", t.TempDir()})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.effect != effects.CarouselID || opts.palette != 3 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if _, err := export(opts); err != nil {
		t.Fatalf("export: %v", err)
	}
}
