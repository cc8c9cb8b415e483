package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RajaFawad1/aveenixx/internal/common"
	"github.com/RajaFawad1/aveenixx/internal/model"
	"github.com/RajaFawad1/aveenixx/internal/service"
)

// CreateClassificationRule persists a rule mapping a pattern to a category.
// Returns common.ErrDuplicateEntry when an equivalent rule already exists.
func (s *SQLiteStorage) CreateClassificationRule(ctx context.Context, label string, matchType model.MatchType, pattern string, categoryID, priority int, confidence float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(pattern, "pattern"); err != nil {
		return err
	}
	if err := validateConfidence(confidence); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classification_rules (label, match_type, pattern, category_id, priority, confidence)
		VALUES (?, ?, ?, ?, ?, ?)`,
		label, string(matchType), pattern, categoryID, priority, confidence)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("rule %q: %w", pattern, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create classification rule: %w", err)
	}

	slog.Debug("created classification rule", "pattern", pattern, "category_id", categoryID)
	return nil
}

// GetClassificationRules returns all active rules, highest priority first.
func (s *SQLiteStorage) GetClassificationRules(ctx context.Context) ([]model.ClassificationRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, label, match_type, pattern, category_id, priority, confidence, is_active, created_at
		FROM classification_rules
		WHERE is_active = 1
		ORDER BY priority DESC, confidence DESC, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query classification rules: %w", err)
	}
	defer rows.Close()

	var rules []model.ClassificationRule
	for rows.Next() {
		var rule model.ClassificationRule
		var matchType string
		if err := rows.Scan(&rule.ID, &rule.Label, &matchType, &rule.Pattern,
			&rule.CategoryID, &rule.Priority, &rule.Confidence, &rule.IsActive, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan classification rule: %w", err)
		}
		rule.MatchType = model.MatchType(matchType)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classification rules: %w", err)
	}

	return rules, nil
}

// CountClassificationRules returns the number of active rules.
func (s *SQLiteStorage) CountClassificationRules(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM classification_rules WHERE is_active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count classification rules: %w", err)
	}
	return count, nil
}

// ClassifyLegacy is the historical single-signal classifier: it scans active
// keyword rules in priority order and returns the first whose pattern occurs
// in the product text. The price argument is accepted for interface parity
// with the historical contract; persisted rules are text-only.
func (s *SQLiteStorage) ClassifyLegacy(ctx context.Context, name, description, brand string, _ float64) (*model.LegacyMatch, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT r.pattern, r.confidence, c.name
		FROM classification_rules r
		JOIN categories c ON c.id = r.category_id
		WHERE r.is_active = 1 AND c.is_active = 1 AND r.match_type = 'keyword'
		ORDER BY r.priority DESC, r.confidence DESC, r.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules for legacy classification: %w", err)
	}
	defer rows.Close()

	searchText := strings.ToLower(name + " " + description + " " + brand)

	for rows.Next() {
		var pattern, categoryName string
		var confidence float64
		if err := rows.Scan(&pattern, &confidence, &categoryName); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}

		if strings.Contains(searchText, strings.ToLower(pattern)) {
			if err := rows.Err(); err != nil {
				return nil, fmt.Errorf("error iterating rules: %w", err)
			}
			return &model.LegacyMatch{
				CategoryName: categoryName,
				Confidence:   confidence,
				Reason:       fmt.Sprintf("matched keyword %q", pattern),
			}, nil
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return nil, nil
}

// GetRuleStats summarizes the persisted rule store.
func (s *SQLiteStorage) GetRuleStats(ctx context.Context) (*service.RuleStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &service.RuleStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(confidence), 0)
		FROM classification_rules
		WHERE is_active = 1`).Scan(&stats.TotalRules, &stats.AverageConfidence)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rule stats: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM platform_category_mappings`).Scan(&stats.TotalMappings)
	if err != nil {
		return nil, fmt.Errorf("failed to count mappings: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT category_id) FROM platform_category_mappings`).Scan(&stats.CategoriesWithMappings)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to count mapped categories: %w", err)
	}

	return stats, nil
}
