package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/RajaFawad1/aveenixx/internal/model"
	"github.com/RajaFawad1/aveenixx/internal/service"
)

// SaveProducts upserts a batch of products together with their
// classification outcome. Re-importing a feed overwrites prior outcomes.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, name, description, brand, price, platform_categories, tags,
			category_id, category_confidence, classification_source, requires_review)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			brand = excluded.brand,
			price = excluded.price,
			platform_categories = excluded.platform_categories,
			tags = excluded.tags,
			category_id = excluded.category_id,
			category_confidence = excluded.category_confidence,
			classification_source = excluded.classification_source,
			requires_review = excluded.requires_review`)
	if err != nil {
		return fmt.Errorf("failed to prepare product upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		platformCategories, err := json.Marshal(p.PlatformCategories)
		if err != nil {
			return fmt.Errorf("failed to encode platform categories for %s: %w", p.ID, err)
		}
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %s: %w", p.ID, err)
		}

		var categoryID any
		if p.CategoryID > 0 {
			categoryID = p.CategoryID
		}

		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Description, p.Brand, p.Price,
			string(platformCategories), string(tags),
			categoryID, p.CategoryConfidence, string(p.Source), p.RequiresReview); err != nil {
			return fmt.Errorf("failed to save product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit products: %w", err)
	}

	slog.Debug("saved products", "count", len(products))
	return nil
}

// GetProducts returns products matching the filter.
func (s *SQLiteStorage) GetProducts(ctx context.Context, filter service.ProductFilter) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, description, brand, price, platform_categories, tags,
			category_id, category_confidence, classification_source, requires_review, created_at
		FROM products
		WHERE 1=1`
	args := []any{}

	if filter.RequiresReview != nil {
		query += ` AND requires_review = ?`
		args = append(args, *filter.RequiresReview)
	}
	if filter.CategoryID != nil {
		query += ` AND category_id = ?`
		args = append(args, *filter.CategoryID)
	}

	query += ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var description, brand, source sql.NullString
		var platformCategories, tags sql.NullString
		var categoryID sql.NullInt64

		if err := rows.Scan(&p.ID, &p.Name, &description, &brand, &p.Price,
			&platformCategories, &tags, &categoryID, &p.CategoryConfidence,
			&source, &p.RequiresReview, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Description = description.String
		p.Brand = brand.String
		p.Source = model.ClassificationSource(source.String)
		p.CategoryID = int(categoryID.Int64)

		if platformCategories.Valid && platformCategories.String != "" {
			if err := json.Unmarshal([]byte(platformCategories.String), &p.PlatformCategories); err != nil {
				return nil, fmt.Errorf("failed to decode platform categories for %s: %w", p.ID, err)
			}
		}
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &p.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode tags for %s: %w", p.ID, err)
			}
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
