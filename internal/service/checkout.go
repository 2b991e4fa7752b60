package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/event"
	"github.com/cantikstore/storefront/internal/repository"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// CheckoutConfig holds the storefront's checkout policy.
type CheckoutConfig struct {
	// WhatsAppNumber is the shop's order line, in any human format;
	// non-digits are stripped when building the deep link.
	WhatsAppNumber string
	// FreeDeliveryThreshold is the subtotal at or above which delivery
	// is free.
	FreeDeliveryThreshold int64
	// DeliveryCharge applies below the threshold.
	DeliveryCharge int64
	// StoreName appears in the order message header.
	StoreName string
}

// CheckoutResult is what the storefront hands the customer: the recorded
// order plus the WhatsApp deep link that opens a chat with the order
// message prefilled.
type CheckoutResult struct {
	Order       *domain.Order `json:"order"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// CheckoutService turns a cart into a pending order and a WhatsApp deep
// link. There is no payment step: the conversation the link opens is the
// order channel.
type CheckoutService struct {
	carts    *CartService
	catalog  repository.Catalog
	producer *event.Producer
	logger   *slog.Logger
	cfg      CheckoutConfig
}

// NewCheckoutService creates a new checkout service. producer may be nil
// when event publishing is disabled.
func NewCheckoutService(carts *CartService, catalog repository.Catalog, producer *event.Producer, logger *slog.Logger, cfg CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
		cfg:      cfg,
	}
}

// DeliveryFee returns the fee for a given cart subtotal.
func (s *CheckoutService) DeliveryFee(subtotal int64) int64 {
	if subtotal >= s.cfg.FreeDeliveryThreshold {
		return 0
	}
	return s.cfg.DeliveryCharge
}

// Checkout snapshots the session's cart into a pending order, records it,
// clears the cart and returns the WhatsApp link. The order is recorded
// before the cart is cleared, so a failure never loses the cart.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID, customerPhone string) (*CheckoutResult, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	subtotal := cart.Subtotal()
	fee := s.DeliveryFee(subtotal)

	items := make([]domain.OrderItem, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}

	order := &domain.Order{
		ID:            domain.NewID(),
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal + fee,
		Status:        domain.OrderStatusPending,
		CustomerPhone: customerPhone,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.catalog.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	message := s.formatOrderMessage(order)

	if _, err := s.carts.ClearCart(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "order recorded but cart not cleared",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total),
		slog.Int("items", len(order.Items)),
	)

	if s.producer != nil {
		if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
			s.logger.WarnContext(ctx, "failed to publish order event",
				slog.String("order_id", order.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return &CheckoutResult{
		Order:       order,
		Message:     message,
		WhatsAppURL: s.whatsAppURL(message),
	}, nil
}

// formatOrderMessage renders the order as the WhatsApp chat message: a
// numbered line per item with size, quantity and line total, then subtotal,
// delivery and total.
func (s *CheckoutService) formatOrderMessage(order *domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛍️ *New Order from %s*\n\n", s.cfg.StoreName)
	b.WriteString("*Order Details:*\n")
	b.WriteString("─────────────────\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Size: %s\n", item.Size)
		fmt.Fprintf(&b, "   Qty: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: ₹%s\n\n", formatAmount(item.UnitPrice*int64(item.Quantity)))
	}

	b.WriteString("─────────────────\n")
	fmt.Fprintf(&b, "*Subtotal:* ₹%s\n", formatAmount(order.Subtotal))
	if order.DeliveryFee == 0 {
		b.WriteString("*Delivery:* FREE ✨\n")
	} else {
		fmt.Fprintf(&b, "*Delivery:* ₹%s\n", formatAmount(order.DeliveryFee))
	}
	fmt.Fprintf(&b, "*Total:* ₹%s\n\n", formatAmount(order.Total))
	b.WriteString("Please confirm my order. Thank you! 🙏")

	return b.String()
}

// whatsAppURL builds the wa.me deep link with the message prefilled.
func (s *CheckoutService) whatsAppURL(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		digitsOnly(s.cfg.WhatsAppNumber),
		url.QueryEscape(message),
	)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatAmount renders an amount with thousands separators (1500 → "1,500").
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
