package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sidenav-tui/internal/app"
	"sidenav-tui/internal/config"
	"sidenav-tui/internal/fs"
	"sidenav-tui/internal/logging"
	"sidenav-tui/internal/nav"
	"sidenav-tui/internal/ui/screens"
)

// Version версия приложения (задается при сборке)
var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sidenav-tui",
		Short: "Terminal dashboard with a full/mini navigation sidebar",
		Long: `sidenav-tui shows a dashboard with a navigation sidebar that switches
between a full and a mini width. The widths come from the style section of
the config file and can be overridden with flags or SIDENAV_* variables.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.Flags())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/sidenav-tui/config.yaml)")
	flags.String("full-nav-width", "", "width of the full nav (e.g. 24ch, 250px, 20%)")
	flags.String("mini-nav-width", "", "width of the mini nav (e.g. 5ch, 60px)")
	flags.String("theme", "", "color theme (dark|light)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.String("log-file", "", "path to the log file")
	flags.Bool("watch", false, "reload nav widths when the config file changes")

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"dark", "light"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newConfigCmd(&cfgFile))
	return rootCmd
}

func newConfigCmd(cfgFile *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *cfgFile
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config file %s: %w", path, err)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

// run запускает программу и ждет ее завершения
func run(ctx context.Context, cfg *config.Config, flags *pflag.FlagSet) error {
	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	application, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if cfg.Watch && cfg.Path() != "" {
		watcher, err := fs.NewFileWatcher(ctx, logger)
		if err != nil {
			return fmt.Errorf("start config watcher: %w", err)
		}
		defer watcher.Close()

		if err := watcher.WatchFile(cfg.Path(), styleReloader(cfg.Path(), flags, logger, program.Send)); err != nil {
			logger.Warn("config watch disabled", "path", cfg.Path(), "error", err)
		}
	}

	logger.Info("starting", "version", Version, "config", cfg.Path())
	_, err = program.Run()
	application.Events().Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// styleReloader возвращает обработчик наблюдателя: перечитывает конфиг и
// отправляет в программу новые ширины вместе с конфигом. Флаги сохраняют
// приоритет.
func styleReloader(path string, flags *pflag.FlagSet, logger *slog.Logger, send func(tea.Msg)) fs.FileChangeCallback {
	return func(ev fs.FileChangeEvent) {
		if ev.Operation == fs.FileDeleted {
			return
		}
		cfg, err := config.Load(path, flags)
		if err != nil {
			logger.Warn("config reload failed", "path", path, "error", err)
			send(app.ErrorMsg{Error: err})
			return
		}
		widths := nav.LoadWidths(cfg)
		logger.Debug("config reloaded", "op", ev.Operation.String(),
			"full", widths.Full(), "mini", widths.Mini())
		send(screens.StyleReloadedMsg{Widths: widths, Config: cfg})
	}
}
