package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoStatus represents the lifecycle of an app order (pedido).
//
// Domain notes:
//   - PENDIENTE → PREPARANDO → PREPARADO → COBRADO → ENTREGADO is the happy path.
//   - Every non-terminal status may also move to CANCELADO.
//   - COBRADO is reached either by a transition request or as a side effect of a payment.

type PedidoStatus string

const (
	PedidoStatusPendiente  PedidoStatus = "PENDIENTE"
	PedidoStatusPreparando PedidoStatus = "PREPARANDO"
	PedidoStatusPreparado  PedidoStatus = "PREPARADO"
	PedidoStatusCobrado    PedidoStatus = "COBRADO"
	PedidoStatusEntregado  PedidoStatus = "ENTREGADO"
	PedidoStatusCancelado  PedidoStatus = "CANCELADO"
)

// PedidoStateMachine is the transition table of app orders.
var PedidoStateMachine = NewStateMachine("pedido", map[PedidoStatus][]PedidoStatus{
	PedidoStatusPendiente:  {PedidoStatusPreparando, PedidoStatusCancelado},
	PedidoStatusPreparando: {PedidoStatusPreparado, PedidoStatusCancelado},
	PedidoStatusPreparado:  {PedidoStatusCobrado, PedidoStatusCancelado},
	PedidoStatusCobrado:    {PedidoStatusEntregado, PedidoStatusCancelado},
	PedidoStatusEntregado:  {},
	PedidoStatusCancelado:  {},
})

// PedidoKitchenStatuses are the statuses shown on the kitchen queue.
var PedidoKitchenStatuses = []PedidoStatus{PedidoStatusPendiente, PedidoStatusPreparando}

// Pedido is an app order placed by a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI usuario_id-index: usuario_id
//   - GSI estado-index: estado
//
// PaymentID is set in the same transaction that records the payment; its presence is the
// one-payment-per-order guard.
type Pedido struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Status    PedidoStatus `json:"status"`
	Items     []LineItem   `json:"items"`
	PaymentID string       `json:"payment_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (p Pedido) Total() decimal.Decimal {
	return LineItemsTotal(p.Items)
}

// IsCharged reports whether the order has been billed; charged orders can't be edited.
func (p Pedido) IsCharged() bool {
	return p.Status == PedidoStatusCobrado
}

// Deletable reports whether the order may still be destroyed.
func (p Pedido) Deletable() bool {
	return !p.IsCharged() && !PedidoStateMachine.IsTerminal(p.Status) && p.PaymentID == ""
}

// Editable reports whether the line items may still be replaced.
func (p Pedido) Editable() bool {
	return !p.IsCharged() && !PedidoStateMachine.IsTerminal(p.Status)
}
