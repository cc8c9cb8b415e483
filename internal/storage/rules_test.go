package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/RajaFawad1/aveenixx/internal/common"
	"github.com/RajaFawad1/aveenixx/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_CreateClassificationRule(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)
	require.NotNil(t, smartphones)

	err = store.CreateClassificationRule(ctx, "Hybrid: smartphone → Smartphones",
		model.MatchTypeKeyword, "smartphone", smartphones.ID, 80, 95)
	require.NoError(t, err)

	rules, err := store.GetClassificationRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "smartphone", rules[0].Pattern)
	assert.Equal(t, model.MatchTypeKeyword, rules[0].MatchType)
	assert.Equal(t, smartphones.ID, rules[0].CategoryID)
	assert.Equal(t, 80, rules[0].Priority)
	assert.InDelta(t, 95, rules[0].Confidence, 0.001)

	count, err := store.CountClassificationRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_CreateClassificationRule_Duplicate(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)

	err = store.CreateClassificationRule(ctx, "first",
		model.MatchTypeKeyword, "smartphone", smartphones.ID, 80, 95)
	require.NoError(t, err)

	// Same (match_type, pattern, category) triple must be rejected even if
	// label or confidence differ.
	err = store.CreateClassificationRule(ctx, "second",
		model.MatchTypeKeyword, "smartphone", smartphones.ID, 10, 50)
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry), "expected duplicate entry, got %v", err)

	count, err := store.CountClassificationRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_CreateClassificationRule_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.CreateClassificationRule(ctx, "bad", model.MatchTypeKeyword, "", 1, 80, 95)
	assert.Error(t, err)

	err = store.CreateClassificationRule(ctx, "bad", model.MatchTypeKeyword, "phone", 1, 80, 150)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
}

func TestSQLiteStorage_ClassifyLegacy(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)
	fashion, err := store.GetCategoryByName(ctx, "Fashion & Apparel")
	require.NoError(t, err)

	require.NoError(t, store.CreateClassificationRule(ctx, "r1",
		model.MatchTypeKeyword, "smartphone", smartphones.ID, 80, 95))
	require.NoError(t, store.CreateClassificationRule(ctx, "r2",
		model.MatchTypeKeyword, "shirt", fashion.ID, 50, 90))

	tests := []struct {
		wantCategory string
		name         string
		productName  string
		description  string
		brand        string
		wantNil      bool
	}{
		{
			name:         "matches name",
			productName:  "Apple iPhone Smartphone",
			wantCategory: "Smartphones",
		},
		{
			name:         "matches description",
			productName:  "Mystery",
			description:  "a very nice shirt",
			wantCategory: "Fashion & Apparel",
		},
		{
			name:         "higher priority rule wins",
			productName:  "smartphone with shirt print",
			wantCategory: "Smartphones",
		},
		{
			name:        "no match",
			productName: "garden hose",
			wantNil:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := store.ClassifyLegacy(ctx, tt.productName, tt.description, tt.brand, 0)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, match)
				return
			}

			require.NotNil(t, match)
			assert.Equal(t, tt.wantCategory, match.CategoryName)
			assert.Positive(t, match.Confidence)
			assert.NotEmpty(t, match.Reason)
		})
	}
}

func TestSQLiteStorage_GetRuleStats(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)

	require.NoError(t, store.CreateClassificationRule(ctx, "r1",
		model.MatchTypeKeyword, "smartphone", smartphones.ID, 80, 90))
	require.NoError(t, store.CreateClassificationRule(ctx, "r2",
		model.MatchTypeKeyword, "iphone", smartphones.ID, 80, 70))
	require.NoError(t, store.CreatePlatformMapping(ctx, smartphones.ID,
		"woocommerce", "hybrid_smartphone", "smartphone", 90, true))

	stats, err := store.GetRuleStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRules)
	assert.Equal(t, 1, stats.TotalMappings)
	assert.Equal(t, 1, stats.CategoriesWithMappings)
	assert.InDelta(t, 80, stats.AverageConfidence, 0.001)
}
