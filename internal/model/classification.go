package model

// ReviewThreshold is the primary confidence below which a classification
// must be confirmed by a human before it is trusted downstream.
const ReviewThreshold = 70.0

// CategoryScore is a category assignment with its accumulated confidence.
type CategoryScore struct {
	Name       string  `json:"name"`
	ID         int     `json:"id"`
	Confidence float64 `json:"confidence"`
}

// Classification is the result of classifying one product. It is constructed
// fresh on every call and owned by the caller; the engine keeps no state.
type Classification struct {
	Primary          CategoryScore   `json:"primary_category"`
	Alternatives     []CategoryScore `json:"alternative_categories"`
	MatchingRules    []string        `json:"matching_rules"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	RequiresReview   bool            `json:"requires_review"`
}
