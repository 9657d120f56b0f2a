package main

import (
	"fmt"

	"github.com/dhamidi/anskit/answer"
	"github.com/dhamidi/anskit/answer/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate an answer-class snippet",
		Long: `Parse and validate an answer-class snippet.

Prints one finding per line and exits non-zero when any finding exists.
If no file is provided, reads the snippet from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}

			def, err := parser.Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			findings := answer.Validate(def)
			for _, finding := range findings {
				fmt.Println(finding)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%d problem(s) found", len(findings))
			}
			return nil
		},
	}
}
