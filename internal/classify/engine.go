package classify

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/RajaFawad1/aveenixx/internal/model"
)

// DefaultPlatform is assumed for platform category strings when the feed
// does not say where they came from.
const DefaultPlatform = "woocommerce"

// ProductInput carries the raw attributes of an incoming product.
// Name is the only required field.
type ProductInput struct {
	Name               string
	Description        string
	Brand              string
	Platform           string
	PlatformCategories []string
	Tags               []string
	Price              float64
}

// Engine combines five independent classification signals into one ranked,
// explainable decision. It is stateless per call; concurrent use is safe.
type Engine struct {
	lookup CategoryLookup
	rules  RuleSet
}

// NewEngine creates a classification engine using the given collaborator and
// rule configuration.
func NewEngine(lookup CategoryLookup, rules RuleSet) *Engine {
	return &Engine{
		lookup: lookup,
		rules:  rules,
	}
}

// scoreboard accumulates per-category contributions across signals.
// It is local to one Classify call, never shared.
type scoreboard struct {
	entries map[string]*scoreEntry
}

type scoreEntry struct {
	reasons []string
	score   float64
}

func newScoreboard() *scoreboard {
	return &scoreboard{entries: make(map[string]*scoreEntry)}
}

func (b *scoreboard) add(category string, score float64, reason string) {
	entry, ok := b.entries[category]
	if !ok {
		entry = &scoreEntry{}
		b.entries[category] = entry
	}
	entry.score += score
	entry.reasons = append(entry.reasons, reason)
}

// rankedCategory is one scored candidate after all signals have run.
type rankedCategory struct {
	name       string
	reasons    []string
	confidence float64
}

// Classify assigns the product to one internal category. It is total: every
// input yields a result, and collaborator failures degrade to the
// Uncategorized fallback flagged for review instead of an error.
func (e *Engine) Classify(ctx context.Context, in ProductInput) model.Classification {
	start := time.Now()

	board := newScoreboard()
	if err := e.runSignals(ctx, in, board); err != nil {
		slog.Error("classification degraded to fallback", "product", in.Name, "error", err)
		return e.errorFallback(ctx, start)
	}

	ranked := rank(board)

	categories, err := e.lookup.GetCategories(ctx)
	if err != nil {
		slog.Error("classification degraded to fallback", "product", in.Name, "error", err)
		return e.errorFallback(ctx, start)
	}

	idsByName := make(map[string]int, len(categories))
	for _, cat := range categories {
		idsByName[cat.Name] = cat.ID
	}

	var primary *model.CategoryScore
	var alternatives []model.CategoryScore

	// Unresolvable names (stale rules referencing renamed or deleted
	// categories) are skipped silently; the next candidate is promoted.
	for _, candidate := range ranked {
		id, ok := idsByName[candidate.name]
		if !ok {
			continue
		}
		score := model.CategoryScore{ID: id, Name: candidate.name, Confidence: candidate.confidence}
		if primary == nil {
			primary = &score
		} else if len(alternatives) < 3 {
			alternatives = append(alternatives, score)
		}
	}

	if primary == nil {
		primary = uncategorizedScore(categories)
		alternatives = nil
	}

	reasons := make([]string, 0, len(ranked))
	for _, candidate := range ranked {
		reasons = append(reasons, candidate.reasons...)
	}

	result := model.Classification{
		Primary:          *primary,
		Alternatives:     alternatives,
		MatchingRules:    reasons,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		RequiresReview:   primary.Confidence < model.ReviewThreshold,
	}

	slog.Debug("classified product",
		"product", in.Name,
		"category", result.Primary.Name,
		"confidence", result.Primary.Confidence,
		"requires_review", result.RequiresReview)

	return result
}

// runSignals applies the five signals in priority order so that reasons read
// strongest-first. Scores accumulate additively across signals.
func (e *Engine) runSignals(ctx context.Context, in ProductInput, board *scoreboard) error {
	searchText := buildSearchText(in)

	// 1. Direct platform category mapping.
	platform := in.Platform
	if platform == "" {
		platform = DefaultPlatform
	}
	for _, raw := range in.PlatformCategories {
		mapped, err := e.lookup.ResolvePlatformCategory(ctx, platform, raw, raw)
		if err != nil {
			return fmt.Errorf("platform mapping signal: %w", err)
		}
		if mapped != nil {
			board.add(mapped.Name, platformMappingWeight,
				fmt.Sprintf("Direct %s mapping: %s", platform, raw))
		}
	}

	// 2. Hybrid keyword analysis.
	for _, rule := range e.rules.MappingRules {
		var matched []string
		for _, keyword := range rule.Keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				matched = append(matched, keyword)
			}
		}
		if len(matched) == 0 {
			continue
		}
		confidence := float64(len(matched)) / float64(len(rule.Keywords)) * rule.Confidence
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		board.add(rule.CategoryName, confidence,
			fmt.Sprintf("Keyword match: %s (%.0f%% confidence)", strings.Join(matched, ", "), confidence))
	}

	// 3. Persisted legacy rules.
	legacy, err := e.lookup.ClassifyLegacy(ctx, in.Name, in.Description, in.Brand, in.Price)
	if err != nil {
		return fmt.Errorf("legacy rule signal: %w", err)
	}
	if legacy != nil && legacy.Confidence > 0 {
		board.add(legacy.CategoryName, legacy.Confidence,
			fmt.Sprintf("Existing rule: %s", legacy.Reason))
	}

	// 4. Brand associations.
	if in.Brand != "" {
		brand := strings.ToLower(in.Brand)
		for _, rule := range e.rules.BrandRules {
			for _, known := range rule.Brands {
				if strings.Contains(brand, known) {
					board.add(rule.CategoryName, rule.Confidence,
						fmt.Sprintf("Brand association: %s → %s", in.Brand, rule.CategoryName))
					break
				}
			}
		}
	}

	// 5. Price bracket.
	if in.Price > 0 {
		for _, bracket := range e.rules.PriceBrackets {
			if in.Price >= bracket.MinPrice {
				board.add(bracket.CategoryName, bracket.Confidence,
					fmt.Sprintf("Price range indicator: $%.2f → %s", in.Price, bracket.CategoryName))
				break
			}
		}
	}

	return nil
}

// rank orders accumulated scores by clamped confidence descending, breaking
// ties by category name ascending so results are deterministic.
func rank(board *scoreboard) []rankedCategory {
	ranked := make([]rankedCategory, 0, len(board.entries))
	for name, entry := range board.entries {
		confidence := entry.score
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		ranked = append(ranked, rankedCategory{
			name:       name,
			confidence: confidence,
			reasons:    entry.reasons,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].confidence != ranked[j].confidence {
			return ranked[i].confidence > ranked[j].confidence
		}
		return ranked[i].name < ranked[j].name
	})

	return ranked
}

// buildSearchText concatenates the textual attributes into one lowercased
// haystack for keyword matching. Missing fields contribute empty strings.
func buildSearchText(in ProductInput) string {
	parts := []string{in.Name, in.Description, in.Brand, strings.Join(in.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// uncategorizedScore finds the taxonomy's Uncategorized node, or synthesizes
// one so a primary category is always returned.
func uncategorizedScore(categories []model.Category) *model.CategoryScore {
	for _, cat := range categories {
		if cat.Slug == model.UncategorizedSlug {
			return &model.CategoryScore{ID: cat.ID, Name: cat.Name, Confidence: 0}
		}
	}
	return &model.CategoryScore{ID: 0, Name: "Uncategorized", Confidence: 0}
}

// errorFallback is the degraded result returned when a signal or the
// category list itself fails.
func (e *Engine) errorFallback(ctx context.Context, start time.Time) model.Classification {
	primary := &model.CategoryScore{ID: 0, Name: "Uncategorized", Confidence: 0}
	if categories, err := e.lookup.GetCategories(ctx); err == nil {
		primary = uncategorizedScore(categories)
	}

	return model.Classification{
		Primary:          *primary,
		Alternatives:     nil,
		MatchingRules:    []string{"Error during classification, applied fallback"},
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		RequiresReview:   true,
	}
}
