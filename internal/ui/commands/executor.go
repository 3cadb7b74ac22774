package commands

import (
	"context"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"expodir/internal/logic"
	"expodir/internal/ui/services/results"
)

func init() {
	// Browser launchers print to the terminal the TUI owns
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a command executor using the system browser and
// clipboard
func NewExecutor(ctx context.Context, listings logic.ListingFetcher, loader *logic.ReferenceLoader, resource string) *Executor {
	return NewExecutorWithContext(&CommandContext{
		Ctx:            ctx,
		Listings:       listings,
		Loader:         loader,
		Resource:       resource,
		OpenURL:        browser.OpenURL,
		WriteClipboard: clipboard.WriteAll,
	})
}

// NewExecutorWithContext creates an executor from a prepared context
func NewExecutorWithContext(cctx *CommandContext) *Executor {
	if cctx.Ctx == nil {
		cctx.Ctx = context.Background()
	}
	return &Executor{ctx: cctx}
}

// ExecuteFetch creates and executes a listing fetch
func (e *Executor) ExecuteFetch(ticket results.Ticket) tea.Cmd {
	return NewFetchListingCommand(e.ctx, ticket).Execute()
}

// ExecuteLoadReferences creates and executes the reference table load
func (e *Executor) ExecuteLoadReferences() tea.Cmd {
	return NewLoadReferencesCommand(e.ctx).Execute()
}

// ExecuteOpenLink creates and executes an open link command
func (e *Executor) ExecuteOpenLink(url string) tea.Cmd {
	return NewOpenLinkCommand(e.ctx, url).Execute()
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(label, value string) tea.Cmd {
	return NewCopyCommand(e.ctx, label, value).Execute()
}
