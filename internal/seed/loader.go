package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a seed file, gunzipping it when its name ends in .gz.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*NameSet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	set, err := readNames(ctx, file, isGzip(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading seed file")
		return nil, fmt.Errorf("error reading seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("names_loaded", set.Size()).
		Msg("seed file loaded successfully")

	return set, nil
}
