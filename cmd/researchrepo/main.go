// Package main is the entry point for the researchrepo CLI: an
// interactive terminal client for a research-paper search backend, with
// a one-shot search mode for scripting.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/config"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/launcher"
	"github.com/manuaishika/researchrepo/internal/tui"
	"github.com/manuaishika/researchrepo/internal/validation"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "researchrepo",
	Short: "Terminal client for researching papers, talks, and code",
	Long: `researchrepo is a terminal frontend for a research-paper search backend.
It finds video explanations and code implementations for a paper, with
autocomplete suggestions, category and year filters, and a popular-papers
panel.

Run without arguments for the interactive interface, or use the search
subcommand for one-shot queries.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer debuglog.Close()

		client := api.NewClient(cfg)
		opener := launcher.NewLauncher(cfg)

		app := tui.NewApp(client, opener, cfg)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running interface: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.toml or ~/.config/researchrepo/config.toml)")
	rootCmd.PersistentFlags().String("server", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "debug log level: DEBUG, INFO, WARN, ERROR, OFF")
}

// loadConfig reads the configuration, applies flag overrides, and
// initializes the debug log.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.API.BaseURL = server
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	normalized, err := validation.NewBaseURLValidator().ValidateAndNormalize(cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", cfg.API.BaseURL, err)
	}
	cfg.API.BaseURL = normalized

	if err := debuglog.Setup(debuglog.ParseLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
