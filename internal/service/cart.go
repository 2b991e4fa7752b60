package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/repository"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// AddItemInput holds the parameters for adding an item to the cart.
type AddItemInput struct {
	ProductID         string `json:"product_id" validate:"required"`
	Size              string `json:"size" validate:"required"`
	Name              string `json:"name" validate:"required"`
	UnitPrice         int64  `json:"unit_price" validate:"gte=0"`
	OriginalUnitPrice int64  `json:"original_unit_price" validate:"gte=0"`
	ImageURL          string `json:"image_url"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityInput holds the parameters for updating a line item quantity.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartService implements the business logic for cart operations. Every
// mutation is written through to the repository before it returns, so the
// in-memory cart is never ahead of the persisted one.
type CartService struct {
	repo   repository.CartRepository
	logger *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, logger *slog.Logger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

func (s *CartService) newEmptyCart(sessionID string) *domain.Cart {
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

// GetCart retrieves the cart for a session. A session with no stored cart,
// or one whose stored cart no longer decodes, gets an empty cart rather than
// an error.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(sessionID), nil
		}
		if errors.Is(err, apperrors.ErrCorruptData) {
			s.logger.WarnContext(ctx, "stored cart corrupt, starting session with empty cart",
				slog.String("session_id", sessionID),
			)
			return s.newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a line item to the session's cart. An existing line item with
// the same product and size merges by summing quantities; the same product
// in a different size stays a separate line. A zero quantity means one.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}
	if input.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if input.UnitPrice < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if idx := cart.FindItemIndex(input.ProductID, input.Size); idx >= 0 {
		cart.Items[idx].Quantity += input.Quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:         input.ProductID,
			Size:              input.Size,
			Name:              input.Name,
			UnitPrice:         input.UnitPrice,
			OriginalUnitPrice: input.OriginalUnitPrice,
			ImageURL:          input.ImageURL,
			Quantity:          input.Quantity,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem removes the line item matching product and size. Removing an
// item that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID, size string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(productID, size)
	if idx < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateQuantity sets the quantity of the line item matching product and
// size. A quantity of zero or less removes the item; targeting an absent
// item is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID, size string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, productID, size)
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(productID, size)
	if idx < 0 {
		return cart, nil
	}

	cart.Items[idx].Quantity = quantity

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// ClearCart empties the session's cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart := s.newEmptyCart(sessionID)
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
