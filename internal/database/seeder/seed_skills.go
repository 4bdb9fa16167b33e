package seeder

import (
	"context"
	"fmt"

	"crewplan/internal/database"
)

// SkillsSeeder inserts the default skill catalog used by new installs.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: "Programming Language"},
		{Name: "JavaScript", Category: "Programming Language"},
		{Name: "TypeScript", Category: "Programming Language"},
		{Name: "Python", Category: "Programming Language"},
		{Name: "React", Category: "Frontend"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "Redis", Category: "Database"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "AWS", Category: "Cloud"},
		{Name: "Project Management", Category: "Management"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
