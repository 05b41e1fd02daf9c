package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/wtf/internal/app"
	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/infrastructure/shell"
	"github.com/doeshing/wtf/internal/version"
)

const msgNoHistoryRecorded = "No history recorded yet."

// newHistoryCommand creates the history command with its subcommands.
func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the prompt/command log",
	}
	historyCmd.AddCommand(
		newHistoryShowCommand(container),
		newHistoryClearCommand(container),
	)
	return historyCmd
}

func newHistoryShowCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recent history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.History.List()
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			return renderHistory(cmd.OutOrStdout(), domain.LastN(entries, limit))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func renderHistory(out io.Writer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}
	for _, entry := range entries {
		when := time.Unix(entry.Timestamp, 0).Format("2006-01-02 15:04")
		fmt.Fprintf(out, "%s  %s\n    $ %s\n", when, entry.Prompt, entry.Command)
	}
	return nil
}

// newInitCommand emits the integration snippet for the named shell.
func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [shell]",
		Short: "Print shell integration snippet (bash, zsh, fish)",
		Long: `Print a shell integration snippet to stdout.

Add it to your shell startup file, for example:
  wtf init zsh >> ~/.zshrc
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			snippet, err := shell.Snippet(name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
}

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wtf version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
			}
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
