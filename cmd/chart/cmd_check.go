package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/chart/grammar"
	"github.com/dhamidi/chart/parse"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open grammar: %w", err)
			}
			defer f.Close()

			g, terminals, err := grammar.Parse(args[0], f)
			if err != nil {
				return err
			}
			if _, err := parse.NewParser(g, terminals); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (start %s, %d symbols, %d terminals)\n",
				args[0], g.Start(), len(g.Symbols()), len(terminals))
			return nil
		},
	}
}
