package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"expodir/internal/eventbus"
)

// Page policies control whether filter and search edits reset the page
const (
	PagePolicyReset = "reset"
	PagePolicyKeep  = "keep"
)

// Config represents the application configuration
type Config struct {
	Version         int    `toml:"version"`
	BaseURL         string `toml:"base_url"`
	ListingResource string `toml:"listing_resource"`
	PageSize        int    `toml:"page_size"`
	SortField       string `toml:"sort_field"`
	SortOrder       string `toml:"sort_order"`
	SearchDebounce  string `toml:"search_debounce"`
	RequestTimeout  string `toml:"request_timeout"`
	DetailView      bool   `toml:"detail_view"`
	PagePolicy      string `toml:"page_policy"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the file at path.
// An empty path selects the default location.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "expodir", "config.toml")
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			BaseURL: cfg.BaseURL,
			Path:    cs.filePath,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		BaseURL:         "",
		ListingResource: "ciptadusa_directory",
		PageSize:        5,
		SortField:       "is_premium",
		SortOrder:       "asc",
		SearchDebounce:  "500ms",
		RequestTimeout:  "15s",
		DetailView:      true,
		PagePolicy:      PagePolicyReset,
		LogFile:         defaultLogFile(),
		LogLevel:        "info",
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "expodir.log"
	}
	return filepath.Join(dir, "expodir", "expodir.log")
}

// Debounce returns the parsed search debounce window
func (c *Config) Debounce() time.Duration {
	d, err := time.ParseDuration(c.SearchDebounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// Timeout returns the parsed per-request timeout
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, errors.New("base_url is not set"))
	}
	if strings.TrimSpace(c.ListingResource) == "" {
		errs = append(errs, errors.New("listing_resource is not set"))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be at least 1, got %d", c.PageSize))
	}
	switch c.SortOrder {
	case "asc", "desc":
	default:
		errs = append(errs, fmt.Errorf("sort_order must be asc or desc, got %q", c.SortOrder))
	}
	switch c.PagePolicy {
	case PagePolicyReset, PagePolicyKeep:
	default:
		errs = append(errs, fmt.Errorf("unknown page_policy %q", c.PagePolicy))
	}
	if d, err := time.ParseDuration(c.SearchDebounce); err != nil || d < 0 {
		errs = append(errs, fmt.Errorf("invalid search_debounce %q", c.SearchDebounce))
	}
	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		errs = append(errs, fmt.Errorf("invalid request_timeout %q", c.RequestTimeout))
	}

	return errors.Join(errs...)
}
