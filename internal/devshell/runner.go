// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Hosts a texel.App in a local tcell screen and pumps its events.
// Usage: cmd/texelgrad calls RunApp("gradients", args).

package devshell

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrad/apps/gradients"
	"github.com/framegrace/texelgrad/config"
	"github.com/framegrace/texelgrad/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	gradients.AppName: func(args []string) (texel.App, error) {
		opts, specs := gradients.OptionsFromConfig(config.App(gradients.AppName))
		if len(args) > 0 {
			layout, err := gradients.ParseLayout(args[0])
			if err != nil {
				return nil, err
			}
			opts.Layout = layout
		}
		return gradients.New(opts, specs)
	},
}

// Register adds a named builder. Later registrations replace earlier ones.
func Register(name string, builder Builder) {
	registry[name] = builder
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	driver := texel.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer driver.Fini()

	width, height := driver.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		driver.Present(app.Render())
	}

	draw()

	// refreshCh stays open: the app may still send on it after Stop.
	done := make(chan struct{})
	forwarderExited := make(chan struct{})
	go func() {
		defer close(forwarderExited)
		for {
			select {
			case <-refreshCh:
				driver.Wake()
			case <-done:
				return
			}
		}
	}()
	defer func() {
		close(done)
		<-forwarderExited
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
		driver.Wake()
	}()
	defer app.Stop()

	for {
		select {
		case err := <-runErr:
			if err != nil {
				log.Printf("Devshell: %s exited: %v", app.GetTitle(), err)
			}
			return err
		default:
		}

		ev := driver.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args)
}
