// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func resetStore(t *testing.T) {
	t.Helper()
	systemPathOverride = ""
	Reset()
	t.Cleanup(func() {
		systemPathOverride = ""
		Reset()
	})
}

func readDisk(t *testing.T, path string) Config {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return disk
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore(t)

	cfg := System()
	if got := cfg.DefaultApp(); got != "gradients" {
		t.Fatalf("expected defaultApp gradients, got %q", got)
	}
	if got := cfg.LogFile(); got != "" {
		t.Fatalf("expected no log file by default, got %q", got)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	if filepath.Base(path) != "texelgrad.json" || filepath.Base(filepath.Dir(path)) != "texelgrad" {
		t.Fatalf("unexpected system path %s", path)
	}
	if readDisk(t, path).DefaultApp() != "gradients" {
		t.Fatalf("expected defaults on disk")
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore(t)

	if got := App("gradients").Gradients(); got != DefaultGradients() {
		t.Fatalf("gradients section = %+v, want defaults", got)
	}
	entries, err := App("gradients").EffectEntries()
	if err != nil || len(entries) != 4 {
		t.Fatalf("expected four default effects, got %d (%v)", len(entries), err)
	}
	if entries[3]["id"] != "parabola-carousel" || entries[3]["easing"] != "sweep" {
		t.Fatalf("carousel entry should come from the embedded file, got %v", entries[3])
	}

	path, err := appConfigPath("gradients")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if got := readDisk(t, path).Gradients(); got != DefaultGradients() {
		t.Fatalf("app config on disk = %+v", got)
	}
}

func TestUserEditsKeptAndGapsFilled(t *testing.T) {
	dir := t.TempDir()
	resetStore(t)
	UseSystemPath(filepath.Join(dir, "texelgrad.json"))

	appPath, err := appConfigPath("gradients")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if err := writeConfig(appPath, Config{"gradients": map[string]interface{}{"layout": "pager", "fps": 12}}); err != nil {
		t.Fatalf("writeConfig: %v", err)
	}

	g := App("gradients").Gradients()
	if g.Layout != "pager" || g.FPS != 12 {
		t.Fatalf("user values lost: %+v", g)
	}
	if g.Supersample != 2 || !g.ClipCircle {
		t.Fatalf("missing keys should be filled from defaults: %+v", g)
	}
	if _, err := App("gradients").EffectEntries(); err != nil {
		t.Fatalf("default effect list should be filled in: %v", err)
	}
}

func TestEmptyFileReseeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "texelgrad.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	resetStore(t)
	UseSystemPath(path)

	System()
	if readDisk(t, path).DefaultApp() != "gradients" {
		t.Fatalf("empty file should be replaced by the embedded defaults")
	}
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	resetStore(t)
	UseSystemPath(path)

	if got := System().DefaultApp(); got != "gradients" {
		t.Fatalf("expected defaults after a broken file, got %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{broken" {
		t.Fatalf("broken file should be left untouched, got %q (%v)", data, err)
	}
	appPath, err := appConfigPath("gradients")
	if err != nil || filepath.Dir(filepath.Dir(filepath.Dir(appPath))) != dir {
		t.Fatalf("app config should live beside the override, got %s", appPath)
	}
}

func TestSetAppStaysInMemory(t *testing.T) {
	dir := t.TempDir()
	resetStore(t)
	UseSystemPath(filepath.Join(dir, "texelgrad.json"))

	cfg := Clone(App("gradients"))
	g := cfg.Gradients()
	g.FPS = 60
	cfg.SetGradients(g)
	SetApp("gradients", cfg)

	if got := App("gradients").Gradients().FPS; got != 60 {
		t.Fatalf("fps = %d, want 60", got)
	}
	appPath, _ := appConfigPath("gradients")
	if got := readDisk(t, appPath).Gradients().FPS; got != 30 {
		t.Fatalf("file should keep 30 fps, got %d", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Config{
		EffectsSection: map[string]interface{}{
			"list": []interface{}{map[string]interface{}{"id": "rotating-linear"}},
		},
	}
	clone := Clone(orig)
	entries, err := clone.EffectEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("EffectEntries: %v %v", entries, err)
	}
	entries[0]["id"] = "changed"
	clone.Section(EffectsSection)["extra"] = true

	got, _ := orig.EffectEntries()
	if got[0]["id"] != "rotating-linear" {
		t.Fatalf("editing the clone changed the original list")
	}
	if _, ok := orig.Section(EffectsSection)["extra"]; ok {
		t.Fatalf("editing the clone changed the original section")
	}
}

func TestEffectEntriesRejectsMalformedLists(t *testing.T) {
	cases := map[string]interface{}{
		"not a list":    "rotating-linear",
		"not an object": []interface{}{"rotating-linear"},
		"missing id":    []interface{}{map[string]interface{}{"blur": 3}},
	}
	for name, list := range cases {
		cfg := Config{EffectsSection: map[string]interface{}{"list": list}}
		if _, err := cfg.EffectEntries(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if entries, err := (Config{}).EffectEntries(); err != nil || entries != nil {
		t.Fatalf("missing list should be empty, got %v %v", entries, err)
	}
}

func TestGradientsIgnoresMistypedValues(t *testing.T) {
	cfg := Config{GradientsSection: map[string]interface{}{
		"fps":         "fast",
		"clip_circle": "nope",
		"box_cells":   float64(16),
		"layout":      3,
	}}
	g := cfg.Gradients()
	def := DefaultGradients()
	if g.FPS != def.FPS || g.ClipCircle != def.ClipCircle || g.Layout != def.Layout {
		t.Fatalf("mistyped values should keep defaults: %+v", g)
	}
	if g.BoxCells != 16 {
		t.Fatalf("box_cells = %d, want 16", g.BoxCells)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"s": map[string]interface{}{
			"f":   "1.5",
			"i":   float64(7),
			"b":   "true",
			"n":   float64(0),
			"str": 3,
		},
	}
	if cfg.GetFloat("s", "f", 0) != 1.5 || cfg.GetInt("s", "i", 0) != 7 || !cfg.GetBool("s", "b", false) {
		t.Fatalf("typed getters failed")
	}
	if cfg.GetBool("s", "n", true) {
		t.Fatalf("zero should read as false")
	}
	if cfg.GetString("s", "str", "fallback") != "fallback" {
		t.Fatalf("non-string should fall back")
	}
	cfg.RegisterDefaults("s", Section{"i": 1, "new": "x"})
	if cfg.GetInt("s", "i", 0) != 7 || cfg.GetString("s", "new", "") != "x" {
		t.Fatalf("RegisterDefaults should only fill missing keys")
	}
}
