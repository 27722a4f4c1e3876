package main

import (
	"os"

	"github.com/alecthomas/repr"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mendjson/jsonrepair/pkg/jsonrepair"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Repair each file independently, logging per-file results",
	RunE:  runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	logger := logrus.WithField("run_id", runID)

	for _, path := range args {
		fileLogger := logger.WithField("file", path)

		data, err := os.ReadFile(path)
		if err != nil {
			fileLogger.WithError(err).Warn("could not read file")
			continue
		}

		v := jsonrepair.RepairValue(string(data))
		if v == nil {
			fileLogger.Warn("nothing parseable in file")
			continue
		}

		if explain {
			repr.New(os.Stderr).Println(v)
		}

		fileLogger.Info("repaired")
		os.Stdout.WriteString(jsonrepair.Encode(v))
		os.Stdout.WriteString("\n")
	}

	return nil
}
