package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/anskit/answer/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an answer-class snippet and dump the model as JSON",
		Long: `Parse an answer-class snippet and print the structured model as JSON.

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

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(def)
		},
	}
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return source, nil
}
