package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"expodir/internal/eventbus"
	"expodir/internal/logic"
	"expodir/internal/ui"
)

// runBrowser runs the interactive browser until the user quits or the
// process is interrupted
func (a *app) runBrowser(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := a.client()
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()
	logEvents(bus)

	store := logic.NewMemoryReferenceStore()
	model := ui.NewModel(ctx, a.cfg, client, store, bus)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	zap.S().Info("Starting UI")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			zap.S().Info("Interrupted")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	zap.S().Info("UI exited normally")
	return nil
}
