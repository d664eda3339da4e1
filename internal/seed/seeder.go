package seed

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"github.com/rs/zerolog"
)

// CategoryCreator lists and creates categories.
type CategoryCreator interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
}

// Seeder creates the categories named in a seed file.
type Seeder struct {
	loader     Loader
	categories CategoryCreator
	logger     zerolog.Logger
}

// NewSeeder creates a new category seeder.
func NewSeeder(loader Loader, categories CategoryCreator, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:     loader,
		categories: categories,
		logger:     logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads file and creates every listed category whose name is not taken
// yet, in file order. It returns how many categories were created.
func (s *Seeder) Run(ctx context.Context, file string) (int, error) {
	names, err := s.loader.Load(ctx, file)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file: %w", err)
	}

	existing, err := s.categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}

	taken := NewNameSet()
	for _, c := range existing {
		taken.Add(c.Name)
	}

	created := 0
	for _, name := range names.Names() {
		if taken.Contains(name) {
			s.logger.Debug().Str("name", name).Msg("category already exists, skipping")
			continue
		}

		if _, err := s.categories.Create(ctx, name); err != nil {
			return created, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		taken.Add(name)
		created++
	}

	s.logger.Info().
		Str("file", file).
		Int("listed", names.Size()).
		Int("created", created).
		Msg("category seeding completed")

	return created, nil
}
