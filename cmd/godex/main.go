package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/domain"
	"github.com/mmcdole/godex/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "godex",
	Short: "Browse Go standard library package documentation in the terminal",
	Long: `godex loads a catalog of Go packages and their Chinese translations,
then shows a searchable package table and a detail view per package.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/godex/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var loadErr *domain.LoadError
		if errors.As(err, &loadErr) {
			printLoadReport(os.Stderr, loadErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'godex list' or 'godex show' for plain output")
	}

	env, err := setup(cfgFile)
	if err != nil {
		return err
	}
	defer env.Close()

	launcher := adapter.NewLauncher(env.cfg.Browser.Command, env.cfg.Browser.Args, env.logger)
	model := tui.NewModel(env.viewer, launcher, env.logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	env.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		env.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	env.logger.Info("shutting down")
	return nil
}
