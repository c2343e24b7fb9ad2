package main

import (
	"fmt"

	"github.com/dhamidi/chart/eval"
	"github.com/dhamidi/chart/lex"
	"github.com/dhamidi/chart/parse"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var grammarFile string
	var words bool

	cmd := &cobra.Command{
		Use:   "eval SENTENCE",
		Short: "Parse an arithmetic sentence and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, terminals, err := loadGrammar(grammarFile)
			if err != nil {
				return err
			}

			input := lex.Runes(args[0])
			if words {
				input = lex.Fields(args[0])
			}

			rules, err := parse.Parse(g, terminals, input)
			if err != nil {
				return err
			}

			value, err := eval.Evaluate(rules)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "grammar file (default: built-in arithmetic)")
	cmd.Flags().BoolVar(&words, "words", false, "split the sentence on whitespace instead of per character")

	return cmd
}
