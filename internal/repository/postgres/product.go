package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/cantikstore/storefront/pkg/errors"

	"github.com/cantikstore/storefront/internal/domain"
)

const productColumns = `id, name, price, original_price, category, image,
	images, description, sizes, bestseller, in_stock, new_arrival, created_at`

// ListProducts returns up to limit products, newest first.
func (r *Catalog) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		ORDER BY created_at DESC
		LIMIT $1`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p                   domain.Product
			imagesRaw, sizesRaw string
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Category, &p.Image,
			&imagesRaw, &p.Description, &sizesRaw, &p.Bestseller, &p.InStock,
			&p.NewArrival, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Sizes = decodeSizes(sizesRaw)
		p.Images = decodeImages(imagesRaw, p.Image)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// CreateProduct inserts a new product.
func (r *Catalog) CreateProduct(ctx context.Context, p *domain.Product) error {
	sizesJSON, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("marshal sizes: %w", err)
	}
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	query := `
		INSERT INTO products (id, name, price, original_price, category, image,
			images, description, sizes, bestseller, in_stock, new_arrival, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Price,
		p.OriginalPrice,
		p.Category,
		p.Image,
		string(imagesJSON),
		p.Description,
		string(sizesJSON),
		p.Bestseller,
		p.InStock,
		p.NewArrival,
		p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "id", p.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// UpdateProduct replaces an existing product's fields.
func (r *Catalog) UpdateProduct(ctx context.Context, p *domain.Product) error {
	sizesJSON, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("marshal sizes: %w", err)
	}
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	query := `
		UPDATE products
		SET name = $1, price = $2, original_price = $3, category = $4,
			image = $5, images = $6, description = $7, sizes = $8,
			bestseller = $9, in_stock = $10, new_arrival = $11
		WHERE id = $12`

	tag, err := r.pool.Exec(ctx, query,
		p.Name,
		p.Price,
		p.OriginalPrice,
		p.Category,
		p.Image,
		string(imagesJSON),
		p.Description,
		string(sizesJSON),
		p.Bestseller,
		p.InStock,
		p.NewArrival,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// DeleteProduct removes a product by its identifier.
func (r *Catalog) DeleteProduct(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}
	return nil
}

// decodeSizes decodes the serialized size list, degrading to the default size
// set when the stored value is empty or malformed. A bad sizes blob on one
// record must not fail the whole read.
func decodeSizes(raw string) []string {
	if raw == "" {
		return domain.DefaultSizes()
	}
	var sizes []string
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil || len(sizes) == 0 {
		return domain.DefaultSizes()
	}
	return sizes
}

// decodeImages decodes the serialized image list, degrading to the primary
// image when the stored value is empty or malformed.
func decodeImages(raw, primary string) []string {
	var images []string
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &images); err != nil {
			images = nil
		}
	}
	if len(images) == 0 && primary != "" {
		return []string{primary}
	}
	if images == nil {
		return []string{}
	}
	return images
}
