package interfaces

//go:generate mockgen -source=catalog_interface.go -destination=mocks/catalog_interface_mock.go

import (
	"context"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// IProductCatalog resolves products and their current price.
// A zero Product (ID == "") means not found.

type IProductCatalog interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

// IUserDirectory resolves users (clients, waiters, cashiers).
// A zero User (ID == "") means not found.

type IUserDirectory interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
