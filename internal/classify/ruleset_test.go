package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleSet(t *testing.T) {
	rules := DefaultRuleSet()

	require.NotEmpty(t, rules.MappingRules)
	require.NotEmpty(t, rules.BrandRules)
	require.NotEmpty(t, rules.PriceBrackets)

	for _, rule := range rules.MappingRules {
		assert.NotEmpty(t, rule.Keywords, "rule for %s has no keywords", rule.CategoryName)
		assert.NotEmpty(t, rule.Platforms, "rule for %s has no platforms", rule.CategoryName)
		assert.Greater(t, rule.Confidence, 0.0)
		assert.LessOrEqual(t, rule.Confidence, 100.0)
	}

	for _, rule := range rules.BrandRules {
		assert.NotEmpty(t, rule.Brands)
		assert.GreaterOrEqual(t, rule.Confidence, 20.0)
		assert.LessOrEqual(t, rule.Confidence, 30.0)
	}

	// Brackets are ordered highest-first so the first match wins, and the
	// last one catches every positive price.
	previous := rules.PriceBrackets[0].MinPrice
	for _, bracket := range rules.PriceBrackets[1:] {
		assert.Less(t, bracket.MinPrice, previous)
		previous = bracket.MinPrice
	}
	assert.Zero(t, rules.PriceBrackets[len(rules.PriceBrackets)-1].MinPrice)
}
