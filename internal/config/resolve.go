package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys shared by the file, environment and flags
const (
	KeyBaseURL         = "base_url"
	KeyListingResource = "listing_resource"
	KeyPageSize        = "page_size"
	KeySortField       = "sort_field"
	KeySortOrder       = "sort_order"
	KeySearchDebounce  = "search_debounce"
	KeyRequestTimeout  = "request_timeout"
	KeyDetailView      = "detail_view"
	KeyPagePolicy      = "page_policy"
	KeyLogFile         = "log_file"
	KeyLogLevel        = "log_level"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. EXPODIR_BASE_URL
const EnvPrefix = "EXPODIR"

// flagName maps a config key to its command-line flag name
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// RegisterFlags adds one flag per config key to fs. Flag defaults are
// placeholders; unset flags never override the file or environment.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(flagName(KeyBaseURL), "", "REST API base URL, e.g. https://example.com/wp-json/")
	fs.String(flagName(KeyListingResource), d.ListingResource, "listing post type")
	fs.Int(flagName(KeyPageSize), d.PageSize, "results per page")
	fs.String(flagName(KeySortField), d.SortField, "listing sort field")
	fs.String(flagName(KeySortOrder), d.SortOrder, "listing sort order (asc|desc)")
	fs.String(flagName(KeySearchDebounce), d.SearchDebounce, "search input debounce window")
	fs.String(flagName(KeyRequestTimeout), d.RequestTimeout, "per-request timeout")
	fs.Bool(flagName(KeyDetailView), d.DetailView, "enable the exhibitor detail view")
	fs.String(flagName(KeyPagePolicy), d.PagePolicy, "page handling on filter edits (reset|keep)")
	fs.String(flagName(KeyLogFile), d.LogFile, "log file path")
	fs.String(flagName(KeyLogLevel), d.LogLevel, "log level (debug|info|warn|error)")
}

func allKeys() []string {
	return []string{
		KeyBaseURL, KeyListingResource, KeyPageSize, KeySortField, KeySortOrder,
		KeySearchDebounce, KeyRequestTimeout, KeyDetailView, KeyPagePolicy,
		KeyLogFile, KeyLogLevel,
	}
}

// Resolve layers flags and environment over the file configuration.
// Precedence is flag > environment > file > default. fs may be nil.
func Resolve(v *viper.Viper, file *Config, fs *pflag.FlagSet) (*Config, error) {
	if file == nil {
		file = DefaultConfig()
	}

	v.SetDefault(KeyBaseURL, file.BaseURL)
	v.SetDefault(KeyListingResource, file.ListingResource)
	v.SetDefault(KeyPageSize, file.PageSize)
	v.SetDefault(KeySortField, file.SortField)
	v.SetDefault(KeySortOrder, file.SortOrder)
	v.SetDefault(KeySearchDebounce, file.SearchDebounce)
	v.SetDefault(KeyRequestTimeout, file.RequestTimeout)
	v.SetDefault(KeyDetailView, file.DetailView)
	v.SetDefault(KeyPagePolicy, file.PagePolicy)
	v.SetDefault(KeyLogFile, file.LogFile)
	v.SetDefault(KeyLogLevel, file.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range allKeys() {
			flag := fs.Lookup(flagName(key))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	cfg := &Config{
		Version:         file.Version,
		BaseURL:         v.GetString(KeyBaseURL),
		ListingResource: v.GetString(KeyListingResource),
		PageSize:        v.GetInt(KeyPageSize),
		SortField:       v.GetString(KeySortField),
		SortOrder:       strings.ToLower(v.GetString(KeySortOrder)),
		SearchDebounce:  v.GetString(KeySearchDebounce),
		RequestTimeout:  v.GetString(KeyRequestTimeout),
		DetailView:      v.GetBool(KeyDetailView),
		PagePolicy:      strings.ToLower(v.GetString(KeyPagePolicy)),
		LogFile:         v.GetString(KeyLogFile),
		LogLevel:        v.GetString(KeyLogLevel),
	}

	return cfg, nil
}
