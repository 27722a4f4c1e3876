// Command generate_benchmark_report runs the repair package's stress
// benchmarks and prints a short throughput report, the way the
// teacher's script of the same name reports shape-json's fast-path
// throughput against encoding/json.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// benchmarkResult is one parsed line of `go test -bench` output.
type benchmarkResult struct {
	name        string
	nsPerOp     float64
	mbPerSec    float64
	bytesPerOp  int64
	allocsPerOp int64
}

var benchLine = regexp.MustCompile(`^(Benchmark\S+)-\d+\s+(\d+)\s+(\d+(?:\.\d+)?)\s+ns/op(?:\s+(\d+(?:\.\d+)?)\s+MB/s)?\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func main() {
	pkg := flag.String("pkg", "./internal/repair/", "package to benchmark")
	benchtime := flag.String("benchtime", "2s", "benchtime passed to go test")
	flag.Parse()

	fmt.Println("jsonrepair Stress Benchmark Report")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Printf("Scenarios: 500-deep nested brackets, 1000-char unclosed string at EOF, long backslash-escape chains.\n\n")

	output, err := runBenchmarks(*pkg, *benchtime)
	if err != nil {
		fatal("benchmark run failed: %v\n%s", err, output)
	}

	results := parseBenchmarkOutput(output)
	if len(results) == 0 {
		fatal("no benchmark results parsed from output:\n%s", output)
	}

	for _, r := range results {
		fmt.Printf("%-40s %12.0f ns/op  %8d B/op  %6d allocs/op\n", r.name, r.nsPerOp, r.bytesPerOp, r.allocsPerOp)
	}
}

func runBenchmarks(pkg, benchtime string) (string, error) {
	cmd := exec.Command("go", "test", "-run=^$", "-bench=Stress", "-benchmem", "-benchtime="+benchtime, pkg)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func parseBenchmarkOutput(output string) []benchmarkResult {
	var results []benchmarkResult
	for _, line := range strings.Split(output, "\n") {
		m := benchLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ns, _ := strconv.ParseFloat(m[3], 64)
		mb, _ := strconv.ParseFloat(m[4], 64)
		bytesOp, _ := strconv.ParseInt(m[5], 10, 64)
		allocsOp, _ := strconv.ParseInt(m[6], 10, 64)
		results = append(results, benchmarkResult{
			name:        m[1],
			nsPerOp:     ns,
			mbPerSec:    mb,
			bytesPerOp:  bytesOp,
			allocsPerOp: allocsOp,
		})
	}
	return results
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
