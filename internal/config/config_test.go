package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROPCHAIN_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "4"}, cfg.Favorites.Seed)
	require.Equal(t, ProviderStatic, cfg.Wallet.Provider)
	require.Equal(t, 800*time.Millisecond, cfg.Wallet.Delay)
	require.Equal(t, "https://metamask.io/download/", cfg.Wallet.InstallURL)
	require.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
[favorites]
seed = ["2", "3"]

[wallet]
provider = "rpc"
rpc_url = "http://127.0.0.1:8545"
delay = "0s"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"2", "3"}, cfg.Favorites.Seed)
	require.Equal(t, ProviderRPC, cfg.Wallet.Provider)
	require.Equal(t, "http://127.0.0.1:8545", cfg.Wallet.RPCURL)
	require.Zero(t, cfg.Wallet.Delay)
	require.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROPCHAIN_WALLET_PROVIDER", "none")
	t.Setenv("PROPCHAIN_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ProviderNone, cfg.Wallet.Provider)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	base := Config{
		Favorites: FavoritesConfig{Seed: []string{"1"}},
		Wallet:    WalletConfig{Provider: ProviderStatic},
	}
	require.NoError(t, base.Validate())

	noSeed := base
	noSeed.Favorites.Seed = nil
	require.ErrorContains(t, noSeed.Validate(), "favorites.seed")

	unknown := base
	unknown.Wallet.Provider = "ledger"
	require.ErrorContains(t, unknown.Validate(), "ledger")

	rpc := base
	rpc.Wallet.Provider = ProviderRPC
	require.ErrorContains(t, rpc.Validate(), "rpc_url")

	negative := base
	negative.Wallet.Delay = -time.Second
	require.ErrorContains(t, negative.Validate(), "delay")
}
