package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/mendjson/jsonrepair/pkg/jsonrepair"
)

func runRepair(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	v := jsonrepair.RepairValue(string(input))

	if explain {
		repr.New(os.Stderr).Println(v)
	}

	if v == nil {
		fmt.Println()
		return nil
	}
	fmt.Println(jsonrepair.Encode(v))
	return nil
}
