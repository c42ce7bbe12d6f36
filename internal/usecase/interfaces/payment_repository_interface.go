package interfaces

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go

import (
	"context"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// StatusChange moves the order referenced by a payment from From to To.
// From is the status the caller observed; To is written unconditionally once From matches.
type StatusChange struct {
	From string
	To   string
}

// IPaymentRepository abstracts the payment ledger.
//
// Record and Delete touch the payment and its order in one transaction:
//   - Record inserts p, links it to the order and applies charge. It fails with
//     ErrConditionFailed when the order already has a payment or its status moved.
//   - Delete removes p, unlinks it and applies revert. A zero revert only removes p.

type IPaymentRepository interface {
	Record(ctx context.Context, p entities.Payment, charge StatusChange) (entities.Payment, error)
	Delete(ctx context.Context, p entities.Payment, revert StatusChange) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByPedidoID(ctx context.Context, pedidoID string) ([]entities.Payment, error)
	ListByMesaOrdenID(ctx context.Context, mesaOrdenID string) ([]entities.Payment, error)
	ExistsForOrder(ctx context.Context, kind entities.OrderKind, orderID string) (bool, error)
}
