// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldesk/main.go
// Summary: Entry point running the desktop in the current terminal.
// Usage: texeldesk [-backend file|diskv|sqlite|memory] [-layout-dir DIR] [-reset]

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	_ "github.com/framegrace/texeldesk/apps/clock"
	_ "github.com/framegrace/texeldesk/apps/help"
	_ "github.com/framegrace/texeldesk/apps/mail"
	_ "github.com/framegrace/texeldesk/apps/notes"
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
	"github.com/framegrace/texeldesk/wm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	backend   string
	layoutDir string
	logPath   string
	open      string
	reset     bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("texeldesk", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.backend, "backend", "", "Layout store backend: file, diskv, sqlite or memory (default from config)")
	fs.StringVar(&opts.layoutDir, "layout-dir", "", "Directory holding the saved layout (default from config)")
	fs.StringVar(&opts.logPath, "log", "", "Log file path (default ~/.config/texeldesk/logs/texeldesk.log)")
	fs.StringVar(&opts.open, "open", "", "Comma separated feature ids to open on start")
	fs.BoolVar(&opts.reset, "reset", false, "Discard the saved layout before starting")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintln(fs.Output(), "Runs the windowed desktop in the current terminal.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	paths, err := GetPaths()
	if err != nil {
		return err
	}
	logFile, err := setupLogging(paths, opts.logPath)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logFile.Close()
	defer recoverPanic(paths.PanicPath)

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}

	backend, dir := cfg.Storage()
	if opts.backend != "" {
		backend = opts.backend
	}
	if opts.layoutDir != "" {
		dir = opts.layoutDir
	}
	store, err := layout.Open(backend, dir)
	if err != nil {
		return fmt.Errorf("open layout store: %w", err)
	}
	defer store.Close()
	if opts.reset {
		if err := resetLayout(store); err != nil {
			return err
		}
	}

	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	if err := reg.Scan(paths.FeaturesDir); err != nil {
		log.Printf("Registry: Failed to scan %s: %v", paths.FeaturesDir, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	drv := driver.New(driver.NewTcellScreenDriver(screen), driver.ParseTheme(cfg.Theme()))

	desk := wm.NewDesktop(reg, store, wm.Options{
		Metrics:         cfg.Metrics(),
		Viewport:        initialViewport(),
		Session:         map[string]interface{}{"backend": backend},
		Refresh:         drv.Refresh,
		ArrangeTemplate: cfg.ArrangeTemplate(),
		Hotkeys:         cfg.Hotkeys(),
	})
	openStartup(desk.Manager(), cfg.Startup(), opts.open)
	drv.Attach(desk)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	log.Printf("Desktop: Starting with %d features, backend=%s", reg.Count(), backend)
	if err := drv.Run(ctx); err != nil {
		return err
	}
	log.Printf("Desktop: Exited")
	return nil
}

// initialViewport sizes windows opened before the screen starts. The driver
// replaces it with the real screen size on its first frame.
func initialViewport() wm.Viewport {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return wm.Viewport{Width: 80, Height: 24}
	}
	return wm.Viewport{Width: w, Height: h}
}

// openStartup opens the configured startup features when nothing was
// restored. Features named with -open are always opened.
func openStartup(m *wm.Manager, startup []string, extra string) {
	if len(m.Windows()) == 0 {
		for _, id := range startup {
			m.Open(id, nil)
		}
	}
	for _, id := range strings.Split(extra, ",") {
		if id = strings.TrimSpace(id); id != "" {
			m.Open(id, nil)
		}
	}
}

func resetLayout(store layout.Store) error {
	for _, key := range layout.Keys {
		if err := store.Delete(key); err != nil && !errors.Is(err, layout.ErrNotFound) {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func setupLogging(paths *Paths, override string) (*os.File, error) {
	logPath := paths.LogPath
	if override != "" {
		logPath = override
	} else if err := paths.EnsureLogDir(); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
