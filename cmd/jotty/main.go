package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/jotty/internal/app"
	"github.com/marcus/jotty/internal/config"
	"github.com/marcus/jotty/internal/keymap"
	"github.com/marcus/jotty/internal/note"
	"github.com/marcus/jotty/internal/styles"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath  = flag.String("config", "", "path to config file")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("jotty version %s\n", Version)
		os.Exit(0)
	}

	// Setup logging. Stderr only; stdout belongs to the TUI.
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	styles.ApplyTheme(cfg.UI.Theme)

	// Note state is in-memory and session-scoped by design; every run
	// starts with an empty collection.
	clock := note.SystemClock{}
	store := note.NewStore(clock, note.NewSystemIDSource(clock))
	ctrl := note.NewController(store)

	km := keymap.NewRegistry(keymap.DefaultBindings(), cfg.Keymap.Overrides)

	m := app.New(ctrl, km, cfg, *configPath, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Live-reload the config so theme edits apply without a restart.
	stopWatch, err := config.Watch(*configPath, logger, func(fresh *config.Config) {
		p.Send(app.ConfigReloadedMsg{Cfg: fresh})
	})
	if err != nil {
		logger.Warn("config watch unavailable", "err", err)
	} else {
		defer func() {
			if err := stopWatch(); err != nil {
				logger.Warn("config watch shutdown failed", "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
