package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/RajaFawad1/aveenixx/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_ResolvePlatformCategory(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	home, err := store.GetCategoryByName(ctx, "Home & Garden")
	require.NoError(t, err)

	require.NoError(t, store.CreatePlatformMapping(ctx, home.ID,
		"woocommerce", "hybrid_kitchen", "Kitchen & Dining", 85, true))

	tests := []struct {
		name     string
		platform string
		key      string
		label    string
		want     string
		wantNil  bool
	}{
		{
			name:     "exact key match",
			platform: "woocommerce",
			key:      "hybrid_kitchen",
			label:    "whatever",
			want:     "Home & Garden",
		},
		{
			name:     "label fallback is case-insensitive",
			platform: "woocommerce",
			key:      "unknown-key",
			label:    "kitchen & dining",
			want:     "Home & Garden",
		},
		{
			name:     "wrong platform",
			platform: "amazon",
			key:      "hybrid_kitchen",
			label:    "Kitchen & Dining",
			wantNil:  true,
		},
		{
			name:     "no mapping at all",
			platform: "woocommerce",
			key:      "nothing",
			label:    "nothing",
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := store.ResolvePlatformCategory(ctx, tt.platform, tt.key, tt.label)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, cat)
				return
			}
			require.NotNil(t, cat)
			assert.Equal(t, tt.want, cat.Name)
		})
	}
}

func TestSQLiteStorage_ResolvePlatformCategory_InactiveCategoryHidden(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	home, err := store.GetCategoryByName(ctx, "Home & Garden")
	require.NoError(t, err)

	require.NoError(t, store.CreatePlatformMapping(ctx, home.ID,
		"woocommerce", "hybrid_kitchen", "Kitchen", 85, true))
	require.NoError(t, store.DeleteCategory(ctx, home.ID))

	cat, err := store.ResolvePlatformCategory(ctx, "woocommerce", "hybrid_kitchen", "Kitchen")
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestSQLiteStorage_CreatePlatformMapping_Duplicate(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	home, err := store.GetCategoryByName(ctx, "Home & Garden")
	require.NoError(t, err)

	require.NoError(t, store.CreatePlatformMapping(ctx, home.ID,
		"woocommerce", "hybrid_kitchen", "Kitchen", 85, true))

	err = store.CreatePlatformMapping(ctx, home.ID,
		"woocommerce", "hybrid_kitchen", "Different Label", 50, false)
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry), "expected duplicate entry, got %v", err)

	count, err := store.CountPlatformMappings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_GetPlatformMappings(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	home, err := store.GetCategoryByName(ctx, "Home & Garden")
	require.NoError(t, err)
	fashion, err := store.GetCategoryByName(ctx, "Fashion & Apparel")
	require.NoError(t, err)

	require.NoError(t, store.CreatePlatformMapping(ctx, home.ID,
		"woocommerce", "hybrid_kitchen", "Kitchen", 85, true))
	require.NoError(t, store.CreatePlatformMapping(ctx, fashion.ID,
		"woocommerce", "hybrid_dress", "Dress", 90, true))
	require.NoError(t, store.CreatePlatformMapping(ctx, home.ID,
		"amazon", "hybrid_kitchen", "Kitchen", 85, true))

	mappings, err := store.GetPlatformMappings(ctx, "woocommerce")
	require.NoError(t, err)
	require.Len(t, mappings, 2)
	// Ordered by platform key.
	assert.Equal(t, "hybrid_dress", mappings[0].PlatformKey)
	assert.Equal(t, "hybrid_kitchen", mappings[1].PlatformKey)
	assert.True(t, mappings[0].AutoGenerated)
}
