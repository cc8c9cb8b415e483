package model

import "time"

// ClassificationSource records which path assigned a product's category.
type ClassificationSource string

// Classification source constants.
const (
	SourceHybrid   ClassificationSource = "hybrid"
	SourceManual   ClassificationSource = "manual"
	SourceFallback ClassificationSource = "fallback"
)

// Product is an incoming catalog item from a marketplace feed, together with
// the classification outcome persisted after ingestion.
type Product struct {
	CreatedAt          time.Time            `json:"created_at"`
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	Brand              string               `json:"brand,omitempty"`
	Source             ClassificationSource `json:"classification_source,omitempty"`
	PlatformCategories []string             `json:"platform_categories,omitempty"`
	Tags               []string             `json:"tags,omitempty"`
	Price              float64              `json:"price,omitempty"`
	CategoryID         int                  `json:"category_id,omitempty"`
	CategoryConfidence float64              `json:"category_confidence,omitempty"`
	RequiresReview     bool                 `json:"requires_review,omitempty"`
}
