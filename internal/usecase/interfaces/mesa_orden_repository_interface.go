package interfaces

//go:generate mockgen -source=mesa_orden_repository_interface.go -destination=mocks/mesa_orden_repository_interface_mock.go

import (
	"context"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// IMesaOrdenRepository abstracts persistence for table orders.

type IMesaOrdenRepository interface {
	Create(ctx context.Context, m entities.MesaOrden) (entities.MesaOrden, error)
	GetByID(ctx context.Context, id string) (entities.MesaOrden, error)
	List(ctx context.Context) ([]entities.MesaOrden, error)
	ListByWaiterID(ctx context.Context, waiterID string) ([]entities.MesaOrden, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.MesaOrdenStatus) (entities.MesaOrden, error)
	// Update replaces table number and items of m while its stored status equals expected.
	Update(ctx context.Context, m entities.MesaOrden, expected entities.MesaOrdenStatus) (entities.MesaOrden, error)
	Delete(ctx context.Context, id string, expected entities.MesaOrdenStatus) error
}
