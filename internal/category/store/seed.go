package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promptserver/internal/category/models"
	"promptserver/pkg/platform/sentinel"
)

type seedStore interface {
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
}

// SystemCategories are the read-only roots every installation starts with.
var SystemCategories = []struct {
	Name        string
	DisplayName string
	Description string
}{
	{"programming", "Programming", "Code generation, review and debugging prompts"},
	{"writing", "Writing", "Copywriting, editing and storytelling prompts"},
	{"marketing", "Marketing", "Campaigns, SEO and social media prompts"},
	{"education", "Education", "Tutoring, lesson planning and quiz prompts"},
	{"business", "Business", "Strategy, planning and communication prompts"},
	{"data", "Data", "Analysis, SQL and reporting prompts"},
	{"design", "Design", "UI, UX and visual ideation prompts"},
	{"productivity", "Productivity", "Summaries, planning and personal workflow prompts"},
	{"other", "Other", "Prompts that fit no other category"},
}

// SeedSystemCategories inserts missing system categories and returns how many it created.
// Safe to run repeatedly.
func SeedSystemCategories(ctx context.Context, s seedStore, now time.Time) (int, error) {
	created := 0
	for _, sc := range SystemCategories {
		_, err := s.FindByName(ctx, sc.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return created, fmt.Errorf("look up category %s: %w", sc.Name, err)
		}
		c, err := models.NewCategory(sc.Name, sc.DisplayName, sc.Description, nil, true, now)
		if err != nil {
			return created, err
		}
		if err := s.Create(ctx, c); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("create category %s: %w", sc.Name, err)
		}
		created++
	}
	return created, nil
}
