package interfaces

//go:generate mockgen -source=pedido_repository_interface.go -destination=mocks/pedido_repository_interface_mock.go

import (
	"context"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// IPedidoRepository abstracts persistence for app orders.
//
// Writes that depend on the current status take the status the caller observed and fail with
// ErrConditionFailed when it no longer matches.

type IPedidoRepository interface {
	Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, id string) (entities.Pedido, error)
	List(ctx context.Context) ([]entities.Pedido, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Pedido, error)
	ListByStatus(ctx context.Context, statuses ...entities.PedidoStatus) ([]entities.Pedido, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PedidoStatus) (entities.Pedido, error)
	ReplaceItems(ctx context.Context, id string, expected entities.PedidoStatus, items []entities.LineItem) (entities.Pedido, error)
	Delete(ctx context.Context, id string, expected entities.PedidoStatus) error
}
