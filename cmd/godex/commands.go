package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/godex/internal/tui"
	"github.com/mmcdole/godex/internal/tui/styles"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print packages whose name contains query",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cfgFile)
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.viewer.Search(strings.Join(args, " "))
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlainTable(res.Rows, outputWidth()))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <package>",
	Short: "Print the detail view of a package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cfgFile)
		if err != nil {
			return err
		}
		defer env.Close()

		detail, err := env.viewer.Open(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlainDetail(detail, outputWidth()))
		return nil
	},
}

var clearHistory bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print or clear recently viewed packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cfgFile)
		if err != nil {
			return err
		}
		defer env.Close()

		if clearHistory {
			if err := env.viewer.ClearHistory(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		}

		entries, err := env.viewer.Recent()
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), styles.DimStyle.Render("No recently viewed packages"))
			return nil
		}
		for _, entry := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				entry.ViewedAt.Format("2006-01-02 15:04"),
				styles.AccentStyle.Render(styles.Pad(entry.Name, 30)),
				styles.DimStyle.Render(fmt.Sprintf("%d views", entry.Views)))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of godex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "godex %s\n", Version)
	},
}

func init() {
	historyCmd.Flags().BoolVar(&clearHistory, "clear", false, "remove all recently viewed packages")

	rootCmd.AddCommand(listCmd, showCmd, historyCmd, versionCmd)
}
