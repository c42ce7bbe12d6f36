package request

import (
	"strings"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

// LineRequest is one requested line. Quantity is validated by the use case.
type LineRequest struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
}

func toLineSpecs(lines []LineRequest) []entities.LineSpec {
	if lines == nil {
		return nil
	}
	out := make([]entities.LineSpec, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.LineSpec{ProductID: strings.TrimSpace(l.ProductID), Quantity: l.Quantity})
	}
	return out
}

type CreatePedidoRequest struct {
	UserID string        `json:"usuario_id" binding:"required"`
	Items  []LineRequest `json:"detalles"`
}

func (r CreatePedidoRequest) LineSpecs() []entities.LineSpec {
	return toLineSpecs(r.Items)
}

type UpdatePedidoRequest struct {
	Items []LineRequest `json:"detalles"`
}

func (r UpdatePedidoRequest) LineSpecs() []entities.LineSpec {
	return toLineSpecs(r.Items)
}

// UpdateStatusRequest is shared by both order kinds.
type UpdateStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

func (r UpdateStatusRequest) Normalized() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

type CreateMesaOrdenRequest struct {
	TableNumber int           `json:"numero_mesa"`
	WaiterID    string        `json:"mesero_id" binding:"required"`
	Items       []LineRequest `json:"detalles"`
}

func (r CreateMesaOrdenRequest) ToCommand() usecase.CreateMesaOrdenCommand {
	return usecase.CreateMesaOrdenCommand{
		TableNumber: r.TableNumber,
		WaiterID:    strings.TrimSpace(r.WaiterID),
		Lines:       toLineSpecs(r.Items),
	}
}

// UpdateMesaOrdenRequest leaves omitted fields untouched.
type UpdateMesaOrdenRequest struct {
	TableNumber *int          `json:"numero_mesa"`
	Items       []LineRequest `json:"detalles"`
}

func (r UpdateMesaOrdenRequest) ToEdit() usecase.MesaOrdenEdit {
	return usecase.MesaOrdenEdit{
		TableNumber: r.TableNumber,
		Lines:       toLineSpecs(r.Items),
	}
}
