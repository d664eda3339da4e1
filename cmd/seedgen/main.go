// Command seedgen writes a sample category seed file.
package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

var sampleCategories = []string{
	"Books",
	"Electronics",
	"Games",
	"Garden",
	"Home & Kitchen",
	"Music",
	"Office Supplies",
	"Sports",
	"Toys",
}

func main() {
	out := pflag.StringP("out", "o", "data/seeds/categories.txt.gz", "seed file to write; gzipped when the name ends in .gz")
	pflag.Parse()

	if err := writeSeedFile(*out, sampleCategories); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d categories\n", *out, len(sampleCategories))
}

// writeSeedFile writes one name per line to path, creating parent directories.
func writeSeedFile(path string, names []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if !strings.HasSuffix(path, ".gz") {
		return writeLines(file, names)
	}

	gzipWriter := gzip.NewWriter(file)
	if err := writeLines(gzipWriter, names); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}

	return nil
}

func writeLines(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return fmt.Errorf("failed to write category: %w", err)
		}
	}
	return nil
}
