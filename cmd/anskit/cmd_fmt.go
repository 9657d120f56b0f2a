package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/anskit/answer"
	"github.com/dhamidi/anskit/answer/parser"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Round-trip an answer-class snippet through parse and generate",
		Long: `Normalize an answer-class snippet by parsing it and regenerating it.

Field annotations, descriptions and method bodies survive byte-for-byte;
layout and quoting are canonicalized. If no file is provided, reads the
snippet from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}

			source, err := readSource(args)
			if err != nil {
				return err
			}

			def, err := parser.Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			output := answer.Generate(def)

			if fmtOverwrite {
				return os.WriteFile(args[0], []byte(output), 0644)
			}
			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
