package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anskit",
		Short: "Round-trip tooling for answer verification classes",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
