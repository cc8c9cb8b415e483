package model

import "time"

// MatchType indicates how a classification rule's pattern is evaluated.
type MatchType string

// Match type constants.
const (
	// MatchTypeKeyword matches the pattern as a case-insensitive substring.
	MatchTypeKeyword MatchType = "keyword"
	// MatchTypeRegex matches the pattern as a regular expression.
	MatchTypeRegex MatchType = "regex"
)

// ClassificationRule is a persisted rule mapping a text pattern to a category.
// Rules are consulted by the legacy single-signal classifier in priority order.
type ClassificationRule struct {
	CreatedAt  time.Time `json:"created_at"`
	Label      string    `json:"label"`
	MatchType  MatchType `json:"match_type"`
	Pattern    string    `json:"pattern"`
	ID         int       `json:"id"`
	CategoryID int       `json:"category_id"`
	Priority   int       `json:"priority"`
	Confidence float64   `json:"confidence"`
	IsActive   bool      `json:"is_active"`
}

// PlatformMapping links an external platform's raw category key to an
// internal category. Many platform keys may map to one category.
type PlatformMapping struct {
	CreatedAt     time.Time `json:"created_at"`
	Platform      string    `json:"platform"`
	PlatformKey   string    `json:"platform_key"`
	PlatformLabel string    `json:"platform_label"`
	ID            int       `json:"id"`
	CategoryID    int       `json:"category_id"`
	Confidence    float64   `json:"confidence"`
	AutoGenerated bool      `json:"auto_generated"`
}

// MappingRule is a static hybrid classification rule: a keyword set that
// votes for one category across a set of source platforms. Mapping rules are
// configuration, not persisted rows; the seeder materializes them into
// ClassificationRule and PlatformMapping records.
type MappingRule struct {
	CategoryName string
	Keywords     []string
	Platforms    []string
	Confidence   float64
}

// BrandRule associates a set of brand names with a category.
type BrandRule struct {
	CategoryName string
	Brands       []string
	Confidence   float64
}

// PriceBracket suggests a category for prices at or above MinPrice.
// Brackets are evaluated highest-first; the first match wins.
type PriceBracket struct {
	CategoryName string
	MinPrice     float64
	Confidence   float64
}

// LegacyMatch is the result of the historical single-signal classifier.
type LegacyMatch struct {
	CategoryName string
	Reason       string
	Confidence   float64
}
