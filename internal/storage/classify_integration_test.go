package storage

import (
	"context"
	"testing"

	"github.com/RajaFawad1/aveenixx/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the engine and seeder against the real SQLite store.

func TestIntegration_SeedTwiceIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	seeder := classify.NewSeeder(store, classify.DefaultRuleSet())

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	require.Positive(t, first.RulesCreated)
	require.Positive(t, first.MappingsCreated)

	rulesAfterFirst, err := store.CountClassificationRules(ctx)
	require.NoError(t, err)
	mappingsAfterFirst, err := store.CountPlatformMappings(ctx)
	require.NoError(t, err)

	second, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.RulesCreated)
	assert.Zero(t, second.MappingsCreated)
	assert.Positive(t, second.DuplicatesSkipped)
	assert.Zero(t, second.Failed)

	rulesAfterSecond, err := store.CountClassificationRules(ctx)
	require.NoError(t, err)
	mappingsAfterSecond, err := store.CountPlatformMappings(ctx)
	require.NoError(t, err)

	assert.Equal(t, rulesAfterFirst, rulesAfterSecond)
	assert.Equal(t, mappingsAfterFirst, mappingsAfterSecond)
}

func TestIntegration_SeedSkipsRulesForMissingCategories(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Only part of the taxonomy exists.
	_, err := store.CreateCategory(ctx, "Smartphones", "smartphones")
	require.NoError(t, err)

	seeder := classify.NewSeeder(store, classify.DefaultRuleSet())
	summary, err := seeder.Seed(ctx)
	require.NoError(t, err)

	assert.Positive(t, summary.RulesCreated)
	assert.Positive(t, summary.SkippedRules)
	assert.Zero(t, summary.Failed)
}

func TestIntegration_ClassifyAfterSeeding(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	seeder := classify.NewSeeder(store, classify.DefaultRuleSet())
	_, err := seeder.Seed(ctx)
	require.NoError(t, err)

	engine := classify.NewEngine(store, classify.DefaultRuleSet())

	result := engine.Classify(ctx, classify.ProductInput{
		Name:        "Apple iPhone 15 Pro",
		Description: "Latest smartphone",
		Brand:       "apple",
		Price:       999,
	})

	assert.Equal(t, "Smartphones", result.Primary.Name)
	assert.GreaterOrEqual(t, result.Primary.Confidence, 70.0)
	assert.False(t, result.RequiresReview)

	// The seeded platform mappings make raw platform category strings
	// resolvable too.
	mapped := engine.Classify(ctx, classify.ProductInput{
		Name:               "Blue Widget",
		PlatformCategories: []string{"hybrid_kitchen"},
	})
	assert.Equal(t, "Home & Garden", mapped.Primary.Name)
	assert.GreaterOrEqual(t, mapped.Primary.Confidence, 40.0)

	unknown := engine.Classify(ctx, classify.ProductInput{Name: "Mystery Item"})
	assert.Equal(t, "Uncategorized", unknown.Primary.Name)
	assert.True(t, unknown.RequiresReview)
}
