// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgrad/main.go
// Summary: Runs the animated gradients screen in the current terminal.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texelgrad/apps/gradients"
	"github.com/framegrace/texelgrad/config"
	"github.com/framegrace/texelgrad/internal/devshell"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("texelgrad", flag.ContinueOnError)
	layout := fs.String("layout", "", "screen layout: list or pager (default from config)")
	fps := fs.Int("fps", 0, "frames per second (default from config)")
	logPath := fs.String("log", "", "write logs to this file instead of discarding them")
	configPath := fs.String("config", "", "path to texelgrad.json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		config.UseSystemPath(*configPath)
	}
	if err := setupLogging(*logPath); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := applyOverrides(set, *layout, *fps); err != nil {
		return err
	}

	return devshell.RunApp(config.System().DefaultApp(), nil)
}

// setupLogging keeps log output off the screen. An explicit path wins over the
// log_file system setting.
func setupLogging(path string) error {
	if path == "" {
		path = config.System().LogFile()
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.Printf("Texelgrad: logging to %s", path)
	return nil
}

// applyOverrides writes the flags that were given on the command line over the
// loaded gradients config. The file on disk is left alone.
func applyOverrides(set map[string]bool, layout string, fps int) error {
	if !set["layout"] && !set["fps"] {
		return nil
	}
	cfg := config.Clone(config.App(gradients.AppName))
	g := cfg.Gradients()
	if set["layout"] {
		l, err := gradients.ParseLayout(layout)
		if err != nil {
			return err
		}
		g.Layout = l.String()
	}
	if set["fps"] {
		if fps <= 0 {
			return fmt.Errorf("fps must be positive, got %d", fps)
		}
		g.FPS = fps
	}
	cfg.SetGradients(g)
	config.SetApp(gradients.AppName, cfg)
	return nil
}
