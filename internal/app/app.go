// Package app is the composition root: it builds the provider client,
// the capability adapters, and the feature controllers, then runs the
// TUI over them.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tripmate/internal/chat"
	"tripmate/internal/client"
	"tripmate/internal/config"
	"tripmate/internal/emergency"
	"tripmate/internal/home"
	"tripmate/internal/lens"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/media"
	"tripmate/internal/planner"
	"tripmate/internal/speech"
	"tripmate/internal/translator"
	"tripmate/internal/ui"
)

// App wires the application together for one run.
type App struct {
	cfg      *config.Config
	provider client.Client
	resolver *location.Resolver
	player   *media.Player
	picker   *media.Picker
	program  *tea.Program
}

// New builds the app from a validated configuration.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	provider, err := client.NewGeminiClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create provider client: %w", err)
	}

	a := &App{cfg: cfg, provider: provider, player: media.NewPlayer()}

	// Controllers are built before the program exists, so notify reads
	// a.program at call time.
	notify := func() {
		if p := a.program; p != nil {
			p.Send(ui.RefreshMsg{})
		}
	}

	homeCtrl := home.NewController(provider, notify)
	a.resolver = location.NewResolver(
		location.NewIPLocator(cfg.Timeout.Location),
		func(st location.State) { homeCtrl.OnLocation(ctx, st) },
	)
	loc := a.resolver.Location

	translatorCtrl := translator.NewController(provider, a.player, notify)
	recognizer := speech.NewCommandRecognizer(cfg.Speech, func(ev speech.Event) {
		translatorCtrl.HandleSpeechEvent(ev)
	})
	translatorCtrl.SetRecognizer(recognizer)

	controllers := ui.Controllers{
		Home:       homeCtrl,
		Chat:       chat.NewController(provider, loc, notify),
		Planner:    planner.NewController(provider, loc, notify),
		Lens:       lens.NewController(provider, loc, notify),
		Translator: translatorCtrl,
		Emergency:  emergency.NewController(provider, loc, cfg.Emergency.Helpline, nil, notify),
		Location:   a.resolver,
	}

	a.program = tea.NewProgram(ui.New(ctx, controllers), tea.WithAltScreen())

	if cfg.Picker.WatchDir != "" {
		picker, err := media.NewPicker(cfg.Picker.WatchDir, cfg.Picker.Patterns)
		if err != nil {
			logging.Warn("image picker unavailable", "dir", cfg.Picker.WatchDir, "error", err)
		} else {
			a.picker = picker
		}
	}

	return a, nil
}

// Run resolves the location, starts the capability pumps, and blocks in
// the TUI event loop until exit.
func (a *App) Run(ctx context.Context) error {
	go a.resolver.Resolve(ctx)

	if a.picker != nil {
		go func() {
			for path := range a.picker.Events() {
				a.program.Send(ui.PickedImageMsg{Path: path})
			}
		}()
	}

	_, err := a.program.Run()
	a.shutdown()
	return err
}

func (a *App) shutdown() {
	if a.picker != nil {
		if err := a.picker.Close(); err != nil {
			logging.Warn("picker close failed", "error", err)
		}
	}
	if err := a.provider.Close(); err != nil {
		logging.Warn("provider close failed", "error", err)
	}
}
