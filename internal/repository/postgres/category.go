package postgres

import (
	"context"
	"fmt"

	apperrors "github.com/cantikstore/storefront/pkg/errors"

	"github.com/cantikstore/storefront/internal/domain"
)

// ListCategories returns up to limit categories, alphabetical by name.
func (r *Catalog) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	query := `
		SELECT id, name, image, created_at FROM categories
		ORDER BY name ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a new category. Names are unique.
func (r *Catalog) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, image, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Image, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "name", c.Name)
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// DeleteCategory removes a category by its identifier.
func (r *Catalog) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("category", id)
	}
	return nil
}
