package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Wallet provider kinds.
const (
	ProviderNone   = "none"
	ProviderStatic = "static"
	ProviderRPC    = "rpc"
)

// Config holds application configuration.
type Config struct {
	Favorites FavoritesConfig `mapstructure:"favorites"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Log       LogConfig       `mapstructure:"log"`
}

// FavoritesConfig holds the favorites the session starts with.
type FavoritesConfig struct {
	Seed []string `mapstructure:"seed"`
}

// WalletConfig selects and tunes the account provider.
type WalletConfig struct {
	Provider   string        `mapstructure:"provider"`
	Accounts   []string      `mapstructure:"accounts"`
	Delay      time.Duration `mapstructure:"delay"`
	Reject     string        `mapstructure:"reject"`
	RPCURL     string        `mapstructure:"rpc_url"`
	InstallURL string        `mapstructure:"install_url"`
}

// LogConfig controls the diagnostics log. The terminal belongs to the UI, so
// logs always go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

func defaultDir(kind string) string {
	home := os.Getenv("HOME")
	switch kind {
	case "config":
		return filepath.Join(home, ".config", "propchain")
	default:
		return filepath.Join(home, ".local", "state", "propchain")
	}
}

// Load reads configuration from path (or the default location when empty)
// and env. Env var overrides use prefix PROPCHAIN_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("favorites.seed", []string{"1", "4"})
	v.SetDefault("wallet.provider", ProviderStatic)
	v.SetDefault("wallet.accounts", []string{"0x71C7656EC7ab88b098defB751B7401B5f6d8976F"})
	v.SetDefault("wallet.delay", "800ms")
	v.SetDefault("wallet.reject", "")
	v.SetDefault("wallet.rpc_url", "")
	v.SetDefault("wallet.install_url", "https://metamask.io/download/")
	v.SetDefault("log.path", filepath.Join(defaultDir("state"), "propchain.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PROPCHAIN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultDir("config"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROPCHAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist; the default location is optional
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects configurations the client cannot start with.
func (c Config) Validate() error {
	if len(c.Favorites.Seed) == 0 {
		return errors.New("favorites.seed must not be empty")
	}
	if !slices.Contains([]string{ProviderNone, ProviderStatic, ProviderRPC}, c.Wallet.Provider) {
		return fmt.Errorf("wallet.provider %q: want none, static or rpc", c.Wallet.Provider)
	}
	if c.Wallet.Provider == ProviderRPC && c.Wallet.RPCURL == "" {
		return errors.New("wallet.rpc_url is required for the rpc provider")
	}
	if c.Wallet.Delay < 0 {
		return errors.New("wallet.delay must not be negative")
	}
	return nil
}
