package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/anskit/answer"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen [file]",
		Short: "Generate snippet source from a model JSON file",
		Long: `Generate answer-class source text from a structured model.

The input is the JSON produced by "anskit parse". If no file is provided,
reads the model from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(args)
			if err != nil {
				return err
			}

			var def answer.ClassDefinition
			if err := json.Unmarshal(data, &def); err != nil {
				return fmt.Errorf("decode model: %w", err)
			}

			_, err = os.Stdout.WriteString(answer.Generate(&def))
			return err
		},
	}
}
