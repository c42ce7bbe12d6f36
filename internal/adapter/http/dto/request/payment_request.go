package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

var ErrInvalidOrderReference = errors.New("exactly one of pedido_id or mesa_orden_id is required")

// CreatePaymentRequest accepts monto as a JSON number or string.
type CreatePaymentRequest struct {
	PedidoID    string          `json:"pedido_id"`
	MesaOrdenID string          `json:"mesa_orden_id"`
	Amount      decimal.Decimal `json:"monto"`
	Method      string          `json:"metodo_pago" binding:"required"`
}

func (r CreatePaymentRequest) ToCommand() (usecase.RecordPaymentCommand, error) {
	pedidoID := strings.TrimSpace(r.PedidoID)
	mesaOrdenID := strings.TrimSpace(r.MesaOrdenID)

	cmd := usecase.RecordPaymentCommand{
		Amount: r.Amount,
		Method: entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Method))),
	}
	switch {
	case pedidoID != "" && mesaOrdenID == "":
		cmd.Kind, cmd.OrderID = entities.OrderKindPedido, pedidoID
	case mesaOrdenID != "" && pedidoID == "":
		cmd.Kind, cmd.OrderID = entities.OrderKindMesaOrden, mesaOrdenID
	default:
		return usecase.RecordPaymentCommand{}, ErrInvalidOrderReference
	}
	return cmd, nil
}
