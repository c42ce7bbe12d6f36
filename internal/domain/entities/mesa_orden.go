package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MesaOrdenStatus represents the lifecycle of a table order taken by a waiter.
//
// The graph is a single path with no cancel edge: CANCELADO is only reachable through the
// administrative cancel operation.

type MesaOrdenStatus string

const (
	MesaOrdenStatusPendiente  MesaOrdenStatus = "PENDIENTE"
	MesaOrdenStatusPreparando MesaOrdenStatus = "PREPARANDO"
	MesaOrdenStatusListo      MesaOrdenStatus = "LISTO"
	MesaOrdenStatusEntregado  MesaOrdenStatus = "ENTREGADO"
	MesaOrdenStatusCobrado    MesaOrdenStatus = "COBRADO"
	MesaOrdenStatusPagado     MesaOrdenStatus = "PAGADO"
	MesaOrdenStatusCancelado  MesaOrdenStatus = "CANCELADO"
)

// MesaOrdenStateMachine is the transition table of table orders.
var MesaOrdenStateMachine = NewStateMachine("mesa_orden", map[MesaOrdenStatus][]MesaOrdenStatus{
	MesaOrdenStatusPendiente:  {MesaOrdenStatusPreparando},
	MesaOrdenStatusPreparando: {MesaOrdenStatusListo},
	MesaOrdenStatusListo:      {MesaOrdenStatusEntregado},
	MesaOrdenStatusEntregado:  {MesaOrdenStatusCobrado},
	MesaOrdenStatusCobrado:    {MesaOrdenStatusPagado},
	MesaOrdenStatusPagado:     {},
	MesaOrdenStatusCancelado:  {},
})

// MesaOrden is an order for a physical table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI mesero_id-index: mesero_id
type MesaOrden struct {
	ID          string          `json:"id"`
	TableNumber int             `json:"table_number"`
	WaiterID    string          `json:"waiter_id"`
	Status      MesaOrdenStatus `json:"status"`
	Items       []LineItem      `json:"items"`
	PaymentID   string          `json:"payment_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (m MesaOrden) Total() decimal.Decimal {
	return LineItemsTotal(m.Items)
}

func (m MesaOrden) IsCharged() bool {
	return m.Status == MesaOrdenStatusCobrado || m.Status == MesaOrdenStatusPagado
}

func (m MesaOrden) Deletable() bool {
	return !m.IsCharged() && !MesaOrdenStateMachine.IsTerminal(m.Status) && m.PaymentID == ""
}

func (m MesaOrden) Editable() bool {
	return !m.IsCharged() && !MesaOrdenStateMachine.IsTerminal(m.Status)
}

// Cancellable reports whether the administrative cancel may be applied.
func (m MesaOrden) Cancellable() bool {
	return m.Editable() && m.PaymentID == ""
}
