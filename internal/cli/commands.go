// Package cli provides the command tree of the expodir binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"expodir/internal/config"
	"expodir/internal/eventbus"
	"expodir/internal/gateway"
	"expodir/internal/logging"
	"expodir/internal/logic"
	"expodir/internal/ui/services/query"
)

// app carries what the persistent setup resolved for the running command
type app struct {
	configPath string
	configSvc  config.ConfigService
	cfg        *config.Config
	closeLog   func()
}

// NewRootCmd creates the root command. Without a subcommand it starts
// the interactive directory browser.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "expodir",
		Short:         "Browse an exhibitor directory in the terminal",
		Long:          `expodir browses the exhibitor directory of a WordPress site through its REST API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, true)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBrowser(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is the user config directory)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newListCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the configuration and installs the logger. Commands that
// can run without a base URL pass validate=false.
func (a *app) setup(cmd *cobra.Command, validate bool) error {
	a.configSvc = config.NewConfigService(a.configPath)
	file, err := a.configSvc.Load()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(viper.New(), file, cmd.Flags())
	if err != nil {
		return err
	}
	if validate {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration (%s): %w", a.configSvc.Path(), err)
		}
	}
	a.cfg = cfg

	closeLog, err := logging.Install(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.closeLog = closeLog

	zap.S().Infow("Configuration resolved",
		"config", a.configSvc.Path(),
		"base_url", cfg.BaseURL,
		"resource", cfg.ListingResource,
		"page_size", cfg.PageSize)
	return nil
}

func (a *app) teardown() {
	if a.closeLog != nil {
		_ = zap.L().Sync()
		a.closeLog()
		a.closeLog = nil
	}
}

// client creates the API gateway for the resolved configuration
func (a *app) client() (*gateway.Client, error) {
	return gateway.NewClient(gateway.Options{
		BaseURL: a.cfg.BaseURL,
		Timeout: a.cfg.Timeout(),
	})
}

// loadReferences fills store with the industry and country tables
func loadReferences(ctx context.Context, directory logic.TermFetcher, store logic.ReferenceStore, bus eventbus.EventBus) error {
	loader := logic.NewReferenceLoader(directory, store, bus, query.ReferenceParams().Values())
	return loader.Load(ctx).Err()
}

// logEvents mirrors failures published on bus into the log
func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FetchFailedEvent); ok {
			zap.S().Warnw("Listing fetch failed", "generation", ev.Generation, "error", ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			zap.S().Errorw(ev.Message, "error", ev.Err)
		}
	})
}
