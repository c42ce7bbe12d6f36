package interfaces

//go:generate mockgen -source=cart_repository_interface.go -destination=mocks/cart_repository_interface_mock.go

import (
	"context"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// ICartRepository abstracts persistence for carts.
//
// Create fails with ErrConditionFailed when the user already has an active cart.
// SaveItems and ConvertToPedido require the stored cart to be active.

type ICartRepository interface {
	Create(ctx context.Context, c entities.Cart) (entities.Cart, error)
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	GetActiveByUserID(ctx context.Context, userID string) (entities.Cart, error)
	SaveItems(ctx context.Context, c entities.Cart) (entities.Cart, error)
	// ConvertToPedido deactivates c and creates p atomically.
	ConvertToPedido(ctx context.Context, c entities.Cart, p entities.Pedido) (entities.Pedido, error)
}
