package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RajaFawad1/aveenixx/internal/common"
	"github.com/RajaFawad1/aveenixx/internal/model"
)

// SeedSummary reports what a seeding run did.
type SeedSummary struct {
	RulesCreated      int
	MappingsCreated   int
	DuplicatesSkipped int
	Failed            int
	SkippedRules      int
}

// Seeder materializes the static hybrid rule table into persisted
// classification rules and platform mappings. Runs are duplicate-tolerant:
// repeating a run creates no new rows. Concurrent runs against the same
// store should be serialized by the caller.
type Seeder struct {
	lookup CategoryLookup
	rules  RuleSet
}

// NewSeeder creates a seeder over the given rule store collaborator.
func NewSeeder(lookup CategoryLookup, rules RuleSet) *Seeder {
	return &Seeder{
		lookup: lookup,
		rules:  rules,
	}
}

// Seed creates one keyword classification rule per (rule, keyword) pair and
// one platform mapping per (platform, keyword) pair over each rule's first
// three keywords. Duplicate rows are skipped and counted; other create
// failures are counted and logged but do not abort the batch. Only the
// inability to read the category list aborts seeding.
func (s *Seeder) Seed(ctx context.Context) (SeedSummary, error) {
	var summary SeedSummary

	categories, err := s.lookup.GetCategories(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load categories: %w", err)
	}

	idsByName := make(map[string]int, len(categories))
	for _, cat := range categories {
		idsByName[cat.Name] = cat.ID
	}

	for _, rule := range s.rules.MappingRules {
		categoryID, ok := idsByName[rule.CategoryName]
		if !ok {
			slog.Info("skipping rule for unknown category", "category", rule.CategoryName)
			summary.SkippedRules++
			continue
		}

		for _, keyword := range rule.Keywords {
			label := fmt.Sprintf("Hybrid: %s → %s", keyword, rule.CategoryName)
			err := s.lookup.CreateClassificationRule(ctx, label, model.MatchTypeKeyword, keyword,
				categoryID, seedRulePriority, rule.Confidence)
			switch {
			case err == nil:
				summary.RulesCreated++
			case errors.Is(err, common.ErrDuplicateEntry):
				summary.DuplicatesSkipped++
			default:
				slog.Warn("failed to create classification rule", "keyword", keyword, "error", err)
				summary.Failed++
			}
		}

		keywords := rule.Keywords
		if len(keywords) > seedKeywordsPerPlatform {
			keywords = keywords[:seedKeywordsPerPlatform]
		}
		for _, platform := range rule.Platforms {
			for _, keyword := range keywords {
				key := "hybrid_" + strings.ReplaceAll(keyword, " ", "_")
				err := s.lookup.CreatePlatformMapping(ctx, categoryID, platform, key, keyword,
					rule.Confidence, true)
				switch {
				case err == nil:
					summary.MappingsCreated++
				case errors.Is(err, common.ErrDuplicateEntry):
					summary.DuplicatesSkipped++
				default:
					slog.Warn("failed to create platform mapping",
						"platform", platform, "keyword", keyword, "error", err)
					summary.Failed++
				}
			}
		}
	}

	slog.Info("seeded hybrid mappings",
		"rules_created", summary.RulesCreated,
		"mappings_created", summary.MappingsCreated,
		"duplicates_skipped", summary.DuplicatesSkipped,
		"failed", summary.Failed)

	return summary, nil
}
