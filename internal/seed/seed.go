// Package seed loads category names from seed files and creates the
// categories that do not exist yet.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"
)

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns the names it lists.
	Load(ctx context.Context, name string) (*NameSet, error)
}

// isGzip reports whether a seed file name denotes gzip content.
func isGzip(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

// readNames reads one name per line from r, decompressing it first when
// gzipped is set. Blank lines are skipped.
func readNames(ctx context.Context, r io.Reader, gzipped bool) (*NameSet, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	set := NewNameSet()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		if lineCount%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lineCount++

		set.Add(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	return set, nil
}
