// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framegrace/texelgrad/apps/gradients"
	"github.com/framegrace/texelgrad/config"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	config.UseSystemPath(filepath.Join(t.TempDir(), "texelgrad.json"))
	t.Cleanup(func() { config.UseSystemPath("") })
}

func TestApplyOverridesOnlyTouchesSetFlags(t *testing.T) {
	useTempConfig(t)

	if err := applyOverrides(map[string]bool{"layout": true}, "pager", 0); err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}
	opts, _ := gradients.OptionsFromConfig(config.App(gradients.AppName))
	if opts.Layout != gradients.LayoutPager {
		t.Fatalf("layout = %v, want pager", opts.Layout)
	}
	if opts.FPS != 30 {
		t.Fatalf("fps = %d, want the configured 30", opts.FPS)
	}
}

func TestApplyOverridesFPS(t *testing.T) {
	useTempConfig(t)

	if err := applyOverrides(map[string]bool{"fps": true}, "", 12); err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}
	opts, _ := gradients.OptionsFromConfig(config.App(gradients.AppName))
	if opts.FPS != 12 {
		t.Fatalf("fps = %d, want 12", opts.FPS)
	}
}

func TestApplyOverridesRejectsBadValues(t *testing.T) {
	useTempConfig(t)

	if err := applyOverrides(map[string]bool{"layout": true}, "grid", 0); err == nil {
		t.Fatal("expected error for unknown layout")
	}
	if err := applyOverrides(map[string]bool{"fps": true}, "", -1); err == nil {
		t.Fatal("expected error for negative fps")
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run([]string{"-nope"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}

func TestSetupLoggingDiscardsByDefault(t *testing.T) {
	useTempConfig(t)
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	if err := setupLogging(""); err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("logs should be discarded when no log file is configured")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	useTempConfig(t)
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	path := filepath.Join(t.TempDir(), "texelgrad.log")
	if err := setupLogging(path); err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Printf("Test: hello")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Test: hello") {
		t.Fatalf("log file missing message: %q", data)
	}
}
