package storage

import (
	"context"
	"testing"

	"github.com/RajaFawad1/aveenixx/internal/model"
	"github.com/RajaFawad1/aveenixx/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_SaveAndGetProducts(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)

	products := []model.Product{
		{
			ID:                 "p1",
			Name:               "Apple iPhone 15 Pro",
			Description:        "Latest smartphone",
			Brand:              "apple",
			Price:              999,
			PlatformCategories: []string{"Phones"},
			Tags:               []string{"mobile", "5g"},
			CategoryID:         smartphones.ID,
			CategoryConfidence: 100,
			Source:             model.SourceHybrid,
			RequiresReview:     false,
		},
		{
			ID:             "p2",
			Name:           "Mystery Item",
			Source:         model.SourceFallback,
			RequiresReview: true,
		},
	}

	require.NoError(t, store.SaveProducts(ctx, products))

	all, err := store.GetProducts(ctx, service.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	var iphone *model.Product
	for i := range all {
		if all[i].ID == "p1" {
			iphone = &all[i]
		}
	}
	require.NotNil(t, iphone)
	assert.Equal(t, []string{"Phones"}, iphone.PlatformCategories)
	assert.Equal(t, []string{"mobile", "5g"}, iphone.Tags)
	assert.Equal(t, smartphones.ID, iphone.CategoryID)
	assert.Equal(t, model.SourceHybrid, iphone.Source)
}

func TestSQLiteStorage_SaveProducts_UpsertOverwritesOutcome(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)

	require.NoError(t, store.SaveProducts(ctx, []model.Product{
		{ID: "p1", Name: "Thing", Source: model.SourceFallback, RequiresReview: true},
	}))
	require.NoError(t, store.SaveProducts(ctx, []model.Product{
		{ID: "p1", Name: "Thing", CategoryID: smartphones.ID, CategoryConfidence: 95,
			Source: model.SourceHybrid, RequiresReview: false},
	}))

	all, err := store.GetProducts(ctx, service.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, smartphones.ID, all[0].CategoryID)
	assert.False(t, all[0].RequiresReview)
}

func TestSQLiteStorage_GetProducts_Filters(t *testing.T) {
	store := createTestStorage(t)
	seedTestCategories(t, store)
	ctx := context.Background()

	smartphones, err := store.GetCategoryByName(ctx, "Smartphones")
	require.NoError(t, err)

	require.NoError(t, store.SaveProducts(ctx, []model.Product{
		{ID: "p1", Name: "Phone", CategoryID: smartphones.ID, CategoryConfidence: 90, Source: model.SourceHybrid},
		{ID: "p2", Name: "Odd", Source: model.SourceFallback, RequiresReview: true},
		{ID: "p3", Name: "Odder", Source: model.SourceFallback, RequiresReview: true},
	}))

	review := true
	flagged, err := store.GetProducts(ctx, service.ProductFilter{RequiresReview: &review})
	require.NoError(t, err)
	assert.Len(t, flagged, 2)

	byCategory, err := store.GetProducts(ctx, service.ProductFilter{CategoryID: &smartphones.ID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "p1", byCategory[0].ID)

	limited, err := store.GetProducts(ctx, service.ProductFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStorage_SaveProducts_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	assert.Error(t, store.SaveProducts(ctx, nil))
	assert.Error(t, store.SaveProducts(ctx, []model.Product{}))
	assert.Error(t, store.SaveProducts(ctx, []model.Product{{Name: "no id"}}))
	assert.Error(t, store.SaveProducts(ctx, []model.Product{{ID: "no-name"}}))
}
