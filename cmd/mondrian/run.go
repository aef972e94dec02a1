package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/mondrian-wm/mondrian/internal/config"
	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/sim"
)

func runLocal() error {
	if debugMode {
		desktop.SetLogLevel(log.DebugLevel)
		config.SetLogLevel(log.DebugLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		Spacing:      spacing,
		NoAnimations: noAnimations,
		Workspaces:   workspaces,
	}, userConfig)

	store := config.NewStore(userConfig)
	model := sim.New(store)

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	// Hot reload: edits to the config file reflow every workspace.
	if configPath, err := config.GetConfigPath(); err == nil {
		stop, err := config.Watch(configPath, func(cfg *config.Config) {
			p.Send(sim.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil {
			log.Warn("config watcher unavailable", "err", err)
		} else {
			defer func() { _ = stop() }()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
