package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/chart/lex"
	"github.com/dhamidi/chart/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var grammarFile string
	var words bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "parse SENTENCE",
		Short: "Parse a sentence and print its derivation",
		Long: `Parse a sentence against a grammar and print one derivation,
top-down, one rule per line.

Without -g, the built-in arithmetic grammar is used and the sentence is
split into one symbol per character. With --words, the sentence is
split on whitespace instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, terminals, err := loadGrammar(grammarFile)
			if err != nil {
				return err
			}

			input := lex.Runes(args[0])
			if words {
				input = lex.Fields(args[0])
			}

			parser, err := parse.NewParser(g, terminals)
			if err != nil {
				return err
			}

			rules, parseErr := parser.Parse(input)
			if debug {
				printChart(cmd.OutOrStdout(), parser)
			}
			if parseErr != nil {
				return parseErr
			}

			out := cmd.OutOrStdout()
			for i := len(rules) - 1; i >= 0; i-- {
				fmt.Fprintln(out, rules[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "grammar file (default: built-in arithmetic)")
	cmd.Flags().BoolVar(&words, "words", false, "split the sentence on whitespace instead of per character")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the chart before the derivation")

	return cmd
}

// printChart dumps every chart position and its items, in discovery
// order, for debugging grammars.
func printChart(w io.Writer, parser *parse.Parser) {
	for i, set := range parser.Chart() {
		fmt.Fprintf(w, "=== %d ===\n", i)
		for _, item := range set.Items() {
			fmt.Fprintln(w, item)
		}
	}
}
