// Package classify implements the hybrid category classification engine:
// weighted signal scoring over platform mappings, keyword rules, persisted
// legacy rules, brand associations, and price brackets.
package classify

import (
	"context"

	"github.com/RajaFawad1/aveenixx/internal/model"
)

// CategoryLookup is the contract the engine and seeder require from their
// environment. The SQLite storage layer satisfies it.
type CategoryLookup interface {
	// GetCategories returns the full internal taxonomy.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// ResolvePlatformCategory maps an external platform's raw category string
	// to an internal category, or returns nil when no mapping exists.
	ResolvePlatformCategory(ctx context.Context, platform, key, label string) (*model.Category, error)

	// ClassifyLegacy runs the historical single-signal classifier over the
	// persisted rule store. Returns nil when no rule matches.
	ClassifyLegacy(ctx context.Context, name, description, brand string, price float64) (*model.LegacyMatch, error)

	// CreateClassificationRule persists a rule. Returns
	// common.ErrDuplicateEntry when an equivalent rule already exists.
	CreateClassificationRule(ctx context.Context, label string, matchType model.MatchType, pattern string, categoryID, priority int, confidence float64) error

	// CreatePlatformMapping persists a platform mapping. Returns
	// common.ErrDuplicateEntry when an equivalent mapping already exists.
	CreatePlatformMapping(ctx context.Context, categoryID int, platform, key, label string, confidence float64, autoGenerated bool) error
}
