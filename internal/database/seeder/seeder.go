package seeder

import (
	"context"
	"log"

	"crewplan/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
	}
}

// RunAll applies every seeder in order; seeders are idempotent so reruns are
// safe.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders []Seeder) error {
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("seed applied | seeder=%s", s.Name())
		}
	}
	return nil
}
