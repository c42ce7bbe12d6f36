package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// lineBuilder resolves owners and snapshots catalog prices for new or edited orders.
// Every check runs before the caller writes anything.
type lineBuilder struct {
	users   interfaces.IUserDirectory
	catalog interfaces.IProductCatalog
}

func validateLineSpecs(lines []entities.LineSpec) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for _, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return fmt.Errorf("%w: empty product id", ErrInvalidID)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: product %s quantity %d", ErrInvalidQuantity, l.ProductID, l.Quantity)
		}
	}
	return nil
}

func (b lineBuilder) resolveUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, fmt.Errorf("%w: empty user id", ErrInvalidID)
	}
	u, err := b.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if u.ID == "" {
		return entities.User{}, fmt.Errorf("%w %s", ErrUserNotFound, userID)
	}
	return u, nil
}

// snapshot validates lines and freezes the current catalog price of each product.
func (b lineBuilder) snapshot(ctx context.Context, lines []entities.LineSpec) ([]entities.LineItem, error) {
	if err := validateLineSpecs(lines); err != nil {
		return nil, err
	}
	prices := make(map[string]entities.Product, len(lines))
	items := make([]entities.LineItem, 0, len(lines))
	for _, l := range lines {
		productID := strings.TrimSpace(l.ProductID)
		product, ok := prices[productID]
		if !ok {
			var err error
			product, err = b.catalog.GetByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			if product.ID == "" {
				return nil, fmt.Errorf("%w %s", ErrProductNotFound, productID)
			}
			if product.Price.IsNegative() || !entities.IsWholeCents(product.Price) {
				return nil, fmt.Errorf("%w: product %s has price %s", ErrInvalidAmount, productID, product.Price)
			}
			prices[productID] = product
		}
		items = append(items, entities.LineItem{
			ProductID: productID,
			Quantity:  l.Quantity,
			UnitPrice: product.Price,
		})
	}
	return items, nil
}
