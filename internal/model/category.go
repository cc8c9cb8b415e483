// Package model defines the core domain models used throughout the application.
package model

import "time"

// UncategorizedSlug identifies the taxonomy's fallback node.
const UncategorizedSlug = "uncategorized"

// Category represents a node in the internal product taxonomy.
type Category struct {
	CreatedAt time.Time
	Name      string
	Slug      string
	ID        int
	IsActive  bool
}
