package main

import (
	"github.com/dhamidi/chart/langserver"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the grammar language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := langserver.NewServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbosity", 1, "log verbosity")

	return cmd
}
