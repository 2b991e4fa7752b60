package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cantikstore/storefront/internal/domain"
	pkgkafka "github.com/cantikstore/storefront/pkg/kafka"
)

// Kafka topic constants for storefront order events.
const (
	TopicOrderCreated       = "storefront.order.created"
	TopicOrderStatusChanged = "storefront.order.status_changed"
)

// Aggregate type constant.
const AggregateTypeOrder = "order"

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// OrderCreatedData is the payload for an order.created event (full order snapshot).
type OrderCreatedData struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	Items         []OrderItemData `json:"items"`
	Subtotal      int64           `json:"subtotal"`
	DeliveryFee   int64           `json:"delivery_fee"`
	Total         int64           `json:"total"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
}

// OrderItemData is the event payload for an order item.
type OrderItemData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// OrderStatusChangedData is the payload for an order.status_changed event.
type OrderStatusChangedData struct {
	OrderID   string `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// Producer publishes storefront order events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishOrderCreated publishes an order.created event with the full order snapshot.
func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	items := make([]OrderItemData, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemData{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	data := OrderCreatedData{
		ID:            order.ID,
		Status:        order.Status,
		Items:         items,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		CustomerPhone: order.CustomerPhone,
	}

	event, err := pkgkafka.NewEvent(TopicOrderCreated, order.ID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create order.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderCreated, event); err != nil {
		return fmt.Errorf("publish order.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.created event",
		slog.String("order_id", order.ID),
	)

	return nil
}

// PublishOrderStatusChanged publishes an order.status_changed event.
func (p *Producer) PublishOrderStatusChanged(ctx context.Context, orderID, oldStatus, newStatus string) error {
	data := OrderStatusChangedData{
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}

	event, err := pkgkafka.NewEvent(TopicOrderStatusChanged, orderID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create order.status_changed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderStatusChanged, event); err != nil {
		return fmt.Errorf("publish order.status_changed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.status_changed event",
		slog.String("order_id", orderID),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
	)

	return nil
}
