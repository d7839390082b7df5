package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/todo/internal/config"
	"github.com/tgienger/todo/internal/logging"
	"github.com/tgienger/todo/internal/ui"
	"github.com/tgienger/todo/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig      string
	flagTheme       string
	flagLogFile     string
	flagLogLevel    string
	flagNoAltScreen bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A single-screen to-do list for the terminal",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default $XDG_CONFIG_HOME/todo/config.toml)")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flagNoAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")

	cmd.AddCommand(themesCmd())
	return cmd
}

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			for _, name := range styles.Names() {
				marker := " "
				if name == cfg.Theme {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

// loadConfig resolves the config and applies flags that were set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoAltScreen {
		cfg.AltScreen = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	if err := styles.Use(cfg.Theme); err != nil {
		return err
	}

	opts := logging.DefaultOptions()
	opts.Path = cfg.LogFile
	opts.Level = cfg.LogLevel
	logger, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Close()

	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	app := ui.NewApp(logger.Logger, cfg.TitleLimit)

	var programOpts []tea.ProgramOption
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, programOpts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	app.Summary()
	return nil
}
