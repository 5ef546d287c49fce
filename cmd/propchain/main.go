package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	slogctx "github.com/veqryn/slog-context"

	"github.com/jask/propchain/internal/catalog"
	"github.com/jask/propchain/internal/config"
	"github.com/jask/propchain/internal/tui"
	"github.com/jask/propchain/internal/wallet"
)

// BuildInfo will be set by the build system
var BuildInfo = "dev"

type flags struct {
	configPath string
	provider   string
	logLevel   string
	startPath  string
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "propchain",
		Short:         "Browse property listings and connect a wallet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $HOME/.config/propchain/config.toml)")
	cmd.Flags().StringVar(&f.provider, "provider", "", "wallet provider: none, static or rpc")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.startPath, "start", "/", "initial route, e.g. /listings or /property/4")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(BuildInfo)
		},
	})
	return cmd
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return oops.In("main").Wrapf(err, "loading configuration")
	}
	if f.provider != "" {
		cfg.Wallet.Provider = f.provider
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return oops.In("main").Wrapf(err, "invalid configuration")
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return oops.In("main").Wrapf(err, "opening log file")
	}
	defer closeLog()
	ctx = slogctx.NewCtx(ctx, logger)

	slot := wallet.NewSlot(buildProvider(cfg.Wallet))
	slogctx.Info(ctx, "starting", "version", BuildInfo, "provider", cfg.Wallet.Provider)

	app := tui.New(ctx, tui.Options{
		Seed:       cfg.Favorites.Seed,
		Slot:       slot,
		Catalog:    catalog.Default(),
		InstallURL: cfg.Wallet.InstallURL,
		StartPath:  f.startPath,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return oops.In("main").Wrapf(err, "running ui")
	}
	return nil
}

func buildProvider(w config.WalletConfig) wallet.Provider {
	switch w.Provider {
	case config.ProviderStatic:
		s := &wallet.Static{Result: w.Accounts, Delay: w.Delay}
		if w.Reject != "" {
			s.Err = errors.New(w.Reject)
		}
		return s
	case config.ProviderRPC:
		return wallet.NewRPC(w.RPCURL)
	}
	return nil
}

func openLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", c.Path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
