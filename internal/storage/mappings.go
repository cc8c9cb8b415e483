package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RajaFawad1/aveenixx/internal/common"
	"github.com/RajaFawad1/aveenixx/internal/model"
)

// ResolvePlatformCategory maps an external platform's raw category string to
// an internal category. It first tries an exact match on the platform key,
// then falls back to a case-insensitive match on the platform label. Returns
// nil when no mapping exists.
func (s *SQLiteStorage) ResolvePlatformCategory(ctx context.Context, platform, key, label string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(platform, "platform"); err != nil {
		return nil, err
	}

	query := `
		SELECT c.id, c.name, c.slug, c.created_at, c.is_active
		FROM platform_category_mappings m
		JOIN categories c ON c.id = m.category_id
		WHERE m.platform = ? AND m.platform_key = ? AND c.is_active = 1
		ORDER BY m.confidence DESC
		LIMIT 1`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, platform, key).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt, &cat.IsActive,
	)
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to resolve platform category: %w", err)
	}

	fallback := `
		SELECT c.id, c.name, c.slug, c.created_at, c.is_active
		FROM platform_category_mappings m
		JOIN categories c ON c.id = m.category_id
		WHERE m.platform = ? AND LOWER(m.platform_label) = LOWER(?) AND c.is_active = 1
		ORDER BY m.confidence DESC
		LIMIT 1`

	err = s.db.QueryRowContext(ctx, fallback, platform, label).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt, &cat.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve platform category by label: %w", err)
	}

	return &cat, nil
}

// CreatePlatformMapping persists a mapping from a platform category key to an
// internal category. Returns common.ErrDuplicateEntry when an equivalent
// mapping already exists.
func (s *SQLiteStorage) CreatePlatformMapping(ctx context.Context, categoryID int, platform, key, label string, confidence float64, autoGenerated bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(platform, "platform"); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if err := validateConfidence(confidence); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO platform_category_mappings (category_id, platform, platform_key, platform_label, confidence, auto_generated)
		VALUES (?, ?, ?, ?, ?, ?)`,
		categoryID, platform, key, label, confidence, autoGenerated)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("mapping %s/%s: %w", platform, key, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create platform mapping: %w", err)
	}

	slog.Debug("created platform mapping", "platform", platform, "key", key, "category_id", categoryID)
	return nil
}

// GetPlatformMappings returns all mappings for one platform.
func (s *SQLiteStorage) GetPlatformMappings(ctx context.Context, platform string) ([]model.PlatformMapping, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(platform, "platform"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, category_id, platform, platform_key, platform_label, confidence, auto_generated, created_at
		FROM platform_category_mappings
		WHERE platform = ?
		ORDER BY platform_key`

	rows, err := s.db.QueryContext(ctx, query, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to query platform mappings: %w", err)
	}
	defer rows.Close()

	var mappings []model.PlatformMapping
	for rows.Next() {
		var m model.PlatformMapping
		var label sql.NullString
		if err := rows.Scan(&m.ID, &m.CategoryID, &m.Platform, &m.PlatformKey,
			&label, &m.Confidence, &m.AutoGenerated, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan platform mapping: %w", err)
		}
		m.PlatformLabel = label.String
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platform mappings: %w", err)
	}

	return mappings, nil
}

// CountPlatformMappings returns the total number of platform mappings.
func (s *SQLiteStorage) CountPlatformMappings(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM platform_category_mappings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count platform mappings: %w", err)
	}
	return count, nil
}
