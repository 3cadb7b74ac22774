package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"expodir/internal/domain"
	"expodir/internal/logic"
	"expodir/internal/ui/services/results"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx            context.Context
	Listings       logic.ListingFetcher
	Loader         *logic.ReferenceLoader
	Resource       string
	OpenURL        func(url string) error
	WriteClipboard func(text string) error
}

// ListingLoadedMsg carries the outcome of one listing fetch
type ListingLoadedMsg struct {
	Ticket results.Ticket
	Page   domain.ResultPage
	Err    error
}

// ReferencesLoadedMsg carries the outcome of the reference table load
type ReferencesLoadedMsg struct {
	Result logic.LoadResult
}

// LinkOpenedMsg reports an external link hand-off
type LinkOpenedMsg struct {
	URL string
	Err error
}

// CopiedMsg reports a clipboard write
type CopiedMsg struct {
	Label string
	Err   error
}

// FetchListingCommand fetches one page of exhibitors for a ticket
type FetchListingCommand struct {
	ctx    *CommandContext
	ticket results.Ticket
}

// NewFetchListingCommand creates a new fetch command
func NewFetchListingCommand(ctx *CommandContext, ticket results.Ticket) *FetchListingCommand {
	return &FetchListingCommand{
		ctx:    ctx,
		ticket: ticket,
	}
}

// Execute returns a Cmd that runs the request off the update loop
func (c *FetchListingCommand) Execute() tea.Cmd {
	cctx, fetcher, resource, ticket := c.ctx.Ctx, c.ctx.Listings, c.ctx.Resource, c.ticket
	return func() tea.Msg {
		zap.S().Debugf("Fetching %s generation %d: %s", resource, ticket.Generation, ticket.Params.Encode())
		page, err := fetcher.FetchExhibitors(cctx, resource, ticket.Params.Values())
		if err != nil {
			err = fmt.Errorf("failed to fetch exhibitors: %w", err)
		}
		return ListingLoadedMsg{Ticket: ticket, Page: page, Err: err}
	}
}

// LoadReferencesCommand loads the industry and country tables
type LoadReferencesCommand struct {
	ctx *CommandContext
}

// NewLoadReferencesCommand creates a new reference load command
func NewLoadReferencesCommand(ctx *CommandContext) *LoadReferencesCommand {
	return &LoadReferencesCommand{ctx: ctx}
}

// Execute returns a Cmd that loads both tables
func (c *LoadReferencesCommand) Execute() tea.Cmd {
	if c.ctx.Loader == nil {
		return nil
	}
	cctx, loader := c.ctx.Ctx, c.ctx.Loader
	return func() tea.Msg {
		return ReferencesLoadedMsg{Result: loader.Load(cctx)}
	}
}

// OpenLinkCommand opens a URL in the system browser
type OpenLinkCommand struct {
	ctx *CommandContext
	url string
}

// NewOpenLinkCommand creates a new open link command
func NewOpenLinkCommand(ctx *CommandContext, url string) *OpenLinkCommand {
	return &OpenLinkCommand{ctx: ctx, url: url}
}

// Execute hands the URL to the opener
func (c *OpenLinkCommand) Execute() tea.Cmd {
	if !domain.HasValue(c.url) {
		return nil
	}
	open, url := c.ctx.OpenURL, c.url
	return func() tea.Msg {
		if open == nil {
			return LinkOpenedMsg{URL: url, Err: errors.New("no browser available")}
		}
		return LinkOpenedMsg{URL: url, Err: open(url)}
	}
}

// CopyCommand writes a value to the clipboard
type CopyCommand struct {
	ctx   *CommandContext
	label string
	value string
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(ctx *CommandContext, label, value string) *CopyCommand {
	return &CopyCommand{ctx: ctx, label: label, value: value}
}

// Execute writes the value; empty and placeholder values are reported
// as errors
func (c *CopyCommand) Execute() tea.Cmd {
	write, label, value := c.ctx.WriteClipboard, c.label, c.value
	return func() tea.Msg {
		if !domain.HasValue(value) {
			return CopiedMsg{Label: label, Err: fmt.Errorf("no %s to copy", label)}
		}
		if write == nil {
			return CopiedMsg{Label: label, Err: errors.New("clipboard not available")}
		}
		if err := write(value); err != nil {
			return CopiedMsg{Label: label, Err: fmt.Errorf("failed to copy %s: %w", label, err)}
		}
		return CopiedMsg{Label: label}
	}
}
