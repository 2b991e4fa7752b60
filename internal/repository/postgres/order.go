package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/cantikstore/storefront/pkg/errors"

	"github.com/cantikstore/storefront/internal/domain"
)

// ListOrders returns up to limit orders, newest first.
func (r *Catalog) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT id, items, subtotal, delivery_fee, total, status, customer_phone, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			o        domain.Order
			itemsRaw string
		)
		if err := rows.Scan(
			&o.ID, &itemsRaw, &o.Subtotal, &o.DeliveryFee, &o.Total,
			&o.Status, &o.CustomerPhone, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Items = decodeOrderItems(itemsRaw)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

// CreateOrder inserts a new order.
func (r *Catalog) CreateOrder(ctx context.Context, o *domain.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, items, subtotal, delivery_fee, total, status, customer_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		o.ID,
		string(itemsJSON),
		o.Subtotal,
		o.DeliveryFee,
		o.Total,
		o.Status,
		o.CustomerPhone,
		o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("order", "id", o.ID)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

// UpdateOrderStatus sets the status of an existing order.
func (r *Catalog) UpdateOrderStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("order", id)
	}
	return nil
}

// decodeOrderItems decodes the serialized item snapshot, degrading to an
// empty list when the stored value is malformed.
func decodeOrderItems(raw string) []domain.OrderItem {
	if raw == "" {
		return []domain.OrderItem{}
	}
	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []domain.OrderItem{}
	}
	return items
}
