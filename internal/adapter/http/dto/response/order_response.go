package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

// money renders amounts with two decimals, as strings to keep them exact.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type LineResponse struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
	UnitPrice string `json:"precio_unitario"`
	Subtotal  string `json:"subtotal"`
}

func fromLineItems(items []entities.LineItem) []LineResponse {
	out := make([]LineResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice),
			Subtotal:  money(it.Subtotal()),
		})
	}
	return out
}

type PedidoResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"usuario_id"`
	Status    string         `json:"estado"`
	Items     []LineResponse `json:"detalles"`
	Total     string         `json:"total"`
	PaymentID string         `json:"pago_id,omitempty"`
	CreatedAt time.Time      `json:"fecha_pedido"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromPedido(p entities.Pedido) PedidoResponse {
	return PedidoResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Status:    string(p.Status),
		Items:     fromLineItems(p.Items),
		Total:     money(p.Total()),
		PaymentID: p.PaymentID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPedidos(list []entities.Pedido) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPedido(p))
	}
	return out
}

type MesaOrdenResponse struct {
	ID          string         `json:"id"`
	TableNumber int            `json:"numero_mesa"`
	WaiterID    string         `json:"mesero_id"`
	Status      string         `json:"estado"`
	Items       []LineResponse `json:"detalles"`
	Total       string         `json:"total"`
	PaymentID   string         `json:"pago_id,omitempty"`
	CreatedAt   time.Time      `json:"fecha_creacion"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func FromMesaOrden(m entities.MesaOrden) MesaOrdenResponse {
	return MesaOrdenResponse{
		ID:          m.ID,
		TableNumber: m.TableNumber,
		WaiterID:    m.WaiterID,
		Status:      string(m.Status),
		Items:       fromLineItems(m.Items),
		Total:       money(m.Total()),
		PaymentID:   m.PaymentID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromMesasOrdenes(list []entities.MesaOrden) []MesaOrdenResponse {
	out := make([]MesaOrdenResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMesaOrden(m))
	}
	return out
}
