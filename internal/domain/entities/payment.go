package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the cashier settled the order.

type PaymentMethod string

const (
	PaymentMethodEfectivo       PaymentMethod = "EFECTIVO"
	PaymentMethodTarjetaCredito PaymentMethod = "TARJETA_CREDITO"
	PaymentMethodTransferencia  PaymentMethod = "TRANSFERENCIA"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodEfectivo, PaymentMethodTarjetaCredito, PaymentMethodTransferencia:
		return true
	}
	return false
}

// OrderKind tells which aggregate a payment settles.

type OrderKind string

const (
	OrderKindPedido    OrderKind = "pedido"
	OrderKindMesaOrden OrderKind = "mesa_orden"
)

func (k OrderKind) Valid() bool {
	return k == OrderKindPedido || k == OrderKindMesaOrden
}

var (
	ErrPaymentWithoutOrder  = errors.New("payment must reference a pedido or a mesa orden")
	ErrPaymentWithTwoOrders = errors.New("payment cannot reference both a pedido and a mesa orden")
)

// Payment is a ledger entry that settles exactly one order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI pedido_id-index: pedido_id
//   - GSI mesa_orden_id-index: mesa_orden_id
type Payment struct {
	ID          string          `json:"id"`
	PedidoID    string          `json:"pedido_id,omitempty"`
	MesaOrdenID string          `json:"mesa_orden_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	PaidAt      time.Time       `json:"paid_at"`
}

// Kind returns the kind of the referenced order, or "" when the reference is invalid.
func (p Payment) Kind() OrderKind {
	switch {
	case p.PedidoID != "" && p.MesaOrdenID == "":
		return OrderKindPedido
	case p.MesaOrdenID != "" && p.PedidoID == "":
		return OrderKindMesaOrden
	}
	return ""
}

// OrderID returns whichever order id is set.
func (p Payment) OrderID() string {
	if p.PedidoID != "" {
		return p.PedidoID
	}
	return p.MesaOrdenID
}

// Validate enforces the exactly-one-reference invariant.
func (p Payment) Validate() error {
	if p.PedidoID == "" && p.MesaOrdenID == "" {
		return ErrPaymentWithoutOrder
	}
	if p.PedidoID != "" && p.MesaOrdenID != "" {
		return ErrPaymentWithTwoOrders
	}
	return nil
}
