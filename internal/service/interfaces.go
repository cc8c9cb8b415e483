// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/RajaFawad1/aveenixx/internal/model"
)

// ProductFilter defines filtering options for product queries.
type ProductFilter struct {
	RequiresReview *bool
	CategoryID     *int
	Limit          int
	Offset         int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*model.Category, error)
	CreateCategory(ctx context.Context, name, slug string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	// Platform mapping operations
	ResolvePlatformCategory(ctx context.Context, platform, key, label string) (*model.Category, error)
	CreatePlatformMapping(ctx context.Context, categoryID int, platform, key, label string, confidence float64, autoGenerated bool) error
	GetPlatformMappings(ctx context.Context, platform string) ([]model.PlatformMapping, error)
	CountPlatformMappings(ctx context.Context) (int, error)

	// Classification rule operations
	CreateClassificationRule(ctx context.Context, label string, matchType model.MatchType, pattern string, categoryID, priority int, confidence float64) error
	GetClassificationRules(ctx context.Context) ([]model.ClassificationRule, error)
	CountClassificationRules(ctx context.Context) (int, error)
	ClassifyLegacy(ctx context.Context, name, description, brand string, price float64) (*model.LegacyMatch, error)

	// Product operations
	SaveProducts(ctx context.Context, products []model.Product) error
	GetProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// Statistics
	GetRuleStats(ctx context.Context) (*RuleStats, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RuleStats summarizes the persisted rule store for reporting.
type RuleStats struct {
	TotalRules             int
	TotalMappings          int
	CategoriesWithMappings int
	AverageConfidence      float64
}
