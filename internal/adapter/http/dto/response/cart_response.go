package response

import (
	"time"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

type CartItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"usuario_id"`
	Active    bool               `json:"activo"`
	Items     []CartItemResponse `json:"items"`
	CreatedAt time.Time          `json:"fecha_creacion"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromCartItems(items []entities.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func FromCart(c entities.Cart) CartResponse {
	return CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Active:    c.Active,
		Items:     FromCartItems(c.Items),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
