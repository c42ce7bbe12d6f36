package response

import (
	"time"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	PedidoID    string    `json:"pedido_id,omitempty"`
	MesaOrdenID string    `json:"mesa_orden_id,omitempty"`
	Amount      string    `json:"monto"`
	Method      string    `json:"metodo_pago"`
	PaidAt      time.Time `json:"fecha_pago"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		PedidoID:    p.PedidoID,
		MesaOrdenID: p.MesaOrdenID,
		Amount:      money(p.Amount),
		Method:      string(p.Method),
		PaidAt:      p.PaidAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
