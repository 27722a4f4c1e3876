// Command test_memory_usage measures allocation growth from repairing
// a single file, adapted from the teacher's Parse()-vs-ParseReader
// comparison. jsonrepair has no streaming mode (repair is a Non-goal
// there — the whole point is lookahead across the document), so this
// keeps only the in-memory measurement.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/mendjson/jsonrepair/pkg/jsonrepair"
)

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func getMemStats() runtime.MemStats {
	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

func testRepair(filename string) error {
	fmt.Println("\n=== Testing RepairValue() ===")

	baseline := getMemStats()
	fmt.Printf("Baseline memory: %s\n", formatBytes(baseline.Alloc))

	fmt.Println("Reading file into memory...")
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	afterRead := getMemStats()
	fmt.Printf("After reading file: %s (delta: +%s)\n",
		formatBytes(afterRead.Alloc),
		formatBytes(afterRead.Alloc-baseline.Alloc))

	fmt.Println("Repairing...")
	start := time.Now()
	v := jsonrepair.RepairValue(string(data))
	elapsed := time.Since(start)

	if v == nil {
		fmt.Println("Nothing parseable in file.")
	}

	afterRepair := getMemStats()
	fmt.Printf("After repairing: %s (delta: +%s)\n",
		formatBytes(afterRepair.Alloc),
		formatBytes(afterRepair.Alloc-baseline.Alloc))
	fmt.Printf("Repair time: %v\n", elapsed)

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run test_memory_usage.go <json_file>")
		os.Exit(1)
	}

	filename := os.Args[1]

	stat, err := os.Stat(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Testing file: %s (%.2f MB)\n", filename, float64(stat.Size())/(1024*1024))

	fmt.Println("\n============================================================")
	if err := testRepair(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Repair error: %v\n", err)
	}

	fmt.Println("\n============================================================")
	fmt.Println("Memory test complete!")
}
