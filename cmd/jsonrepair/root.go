// Package main is the jsonrepair CLI: it reads malformed JSON-like
// text and prints the repaired, canonical form.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	explain bool

	rootCmd = &cobra.Command{
		Use:          "jsonrepair",
		Short:        "jsonrepair",
		SilenceUsage: true,
		Long:         `Repairs malformed, truncated, or hand-edited JSON-like text read from stdin and prints canonical JSON.`,
		RunE:         runRepair,
	}
)

func main() {
	if err := Execute(); err != nil {
		logrus.WithError(err).Error("jsonrepair failed")
		os.Exit(1)
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&explain, "explain", false, "print the repaired value tree to stderr before emitting JSON")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
