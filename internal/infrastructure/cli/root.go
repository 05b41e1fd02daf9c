package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/wtf/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. With no arguments the binary
// drops into the interactive session; with arguments it answers a single
// request and exits.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Session.Clipboard = NewClipboard()
	container.Session.Provider = WithSpinner(container.Session.Provider, os.Stderr)

	var raw bool

	root := &cobra.Command{
		Use:   "wtf [request]",
		Short: "wtf translates natural language into shell commands",
		Long:  "wtf asks a model to translate a natural language request into a shell command, then lets you confirm, edit, or run it.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := NewLineReader()
			defer reader.Close()
			container.Session.Reader = reader

			if len(args) > 0 {
				return container.Session.RunOnce(cmd.Context(), strings.Join(args, " "), raw)
			}
			return container.Session.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVar(&raw, "raw", false, "Print only the command, no prompt or execution")

	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newInitCommand())
	root.AddCommand(newVersionCommand())
	return root, nil
}
