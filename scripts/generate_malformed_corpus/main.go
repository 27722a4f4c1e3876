// Command generate_malformed_corpus writes a directory of
// synthetically-damaged JSON-like documents for manual regression
// testing, adapted from the teacher's generate_large_json (which
// generated valid JSON at a target size) to instead generate invalid
// documents at a target count.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go <output_dir> [count]")
		os.Exit(1)
	}

	dir := os.Args[1]
	count := 200
	if len(os.Args) > 2 {
		fmt.Sscanf(os.Args[2], "%d", &count)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dir: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("case_%04d.json", i)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(damagedDocument(rng, i)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		if i > 0 && i%50 == 0 {
			fmt.Printf("Generated %d cases...\n", i)
		}
	}

	fmt.Printf("\nGenerated %d malformed documents in %s\n", count, dir)
}

// damagedDocument picks one of several damage kinds, cycling
// deterministically through them so a fixed count produces a
// reproducible, varied corpus.
func damagedDocument(rng *rand.Rand, i int) string {
	id := rng.Intn(100000)
	name := fmt.Sprintf("User %d", id)

	switch i % 6 {
	case 0:
		// Missing quotes around keys and a trailing comma.
		return fmt.Sprintf(`{id: %d, name: "%s", active: true,}`, id, name)
	case 1:
		// Stray internal quote inside a string value.
		return fmt.Sprintf(`{"id": %d, "note": "the "%s" user"}`, id, name)
	case 2:
		// Truncated tail: object cut off mid-value.
		return fmt.Sprintf(`{"id": %d, "name": "%s", "tags": ["a", "b"`, id, name)
	case 3:
		// Concatenated documents with no separator.
		return fmt.Sprintf(`{"id": %d}{"id": %d}`, id, id+1)
	case 4:
		// Comma used as a decimal separator.
		return fmt.Sprintf(`{"id": %d, "score": 9,5}`, id)
	default:
		// Single-quoted strings and an unquoted boolean-ish key.
		return fmt.Sprintf(`{'id': %d, 'name': '%s', enabled}`, id, name)
	}
}
